package entry

import "database/sql"

// FiatTransfer is a fiat deposit or withdrawal between two accounts.
type FiatTransfer struct {
	ID          string
	Date        string
	Origin      string
	Destination string
	Amount      float64
}

func (f *FiatTransfer) Write(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT INTO fiat_transfers (id, date, origin, destination, amount)
		 VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Date, f.Origin, f.Destination, f.Amount,
	)
	return err
}
