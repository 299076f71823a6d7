package entry

import "database/sql"

// CoinAccount identifies one coin's wallet on a platform.
type CoinAccount struct {
	ID       string
	Coin     string
	Platform string
}

func (a *CoinAccount) Write(db *sql.DB) error {
	_, err := db.Exec(
		`INSERT INTO accounts (id, coin, platform) VALUES (?, ?, ?)`,
		a.ID, a.Coin, a.Platform,
	)
	return err
}
