package entry

import "database/sql"

// CoinTransfer moves coin between two accounts. The transfer itself is not
// a disposal, but a network fee paid in the coin is.
type CoinTransfer struct {
	ID          string
	Date        string
	Origin      string
	Destination string
	Coin        string
	UnitSize    float64
	Fee         float64
}

func (t *CoinTransfer) Write(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT INTO transfers (id, date, origin, destination, coin, unit_size, fee)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Origin, t.Destination, t.Coin, t.UnitSize, t.Fee,
	)
	return err
}
