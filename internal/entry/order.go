package entry

import "database/sql"

// CoinOrder is a filled buy or sell order on a trading pair.
type CoinOrder struct {
	ID        string
	Date      string
	Pair      string // e.g. "BTC-USD"
	UnitPrice float64
	UnitSize  float64
	Fee       float64
	Side      string // "buy" or "sell"
	Platform  string
}

func (o *CoinOrder) Write(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT INTO orders (id, date, pair, unit_price, unit_size, fee, side, platform)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Date, o.Pair, o.UnitPrice, o.UnitSize, o.Fee, o.Side, o.Platform,
	)
	return err
}
