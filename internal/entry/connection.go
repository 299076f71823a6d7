package entry

import (
	"database/sql"
	"fmt"
)

// ConnectionData is one key/value parameter of a platform connection, e.g.
// the path of an export file or a wallet address.
type ConnectionData struct {
	Key   string
	Value string
}

// PlatformConnection records a connected platform so its client can be
// rebuilt on the next start. The platform name is the registry key.
type PlatformConnection struct {
	Nickname string
	Platform string
	Data     []ConnectionData
}

func (c *PlatformConnection) Write(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin connection write: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO connections (nickname, platform) VALUES (?, ?)`,
		c.Nickname, c.Platform,
	)
	if err != nil {
		return fmt.Errorf("insert connection: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("connection id: %w", err)
	}
	for _, d := range c.Data {
		if _, err := tx.Exec(
			`INSERT INTO connection_data (connection, key, value) VALUES (?, ?, ?)`,
			id, d.Key, d.Value,
		); err != nil {
			return fmt.Errorf("insert connection data %q: %w", d.Key, err)
		}
	}
	return tx.Commit()
}
