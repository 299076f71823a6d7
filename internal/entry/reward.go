package entry

import "database/sql"

// CoinReward is an earned distribution: staking income, a learn-and-earn
// payout, an airdrop. It enters the ledger as a buy lot at its unit price,
// which may be zero.
type CoinReward struct {
	ID          string
	Date        string
	Coin        string
	UnitPrice   float64
	UnitSize    float64
	Type        string // e.g. "staking", "airdrop"
	Description string
}

func (r *CoinReward) Write(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT INTO rewards (id, date, coin, unit_price, unit_size, type, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Date, r.Coin, r.UnitPrice, r.UnitSize, r.Type, r.Description,
	)
	return err
}
