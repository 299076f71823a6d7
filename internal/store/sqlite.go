package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/bwhitmire55/cryptfolio/internal/entry"
	"github.com/bwhitmire55/cryptfolio/internal/record"
)

// SQLiteStore persists entries to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and ensures the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows one writer; a second pooled connection would also see
	// a different database entirely for :memory: paths.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS connections (
			id       INTEGER PRIMARY KEY,
			nickname TEXT,
			platform TEXT,
			UNIQUE(nickname, platform)
		)`,
		`CREATE TABLE IF NOT EXISTS connection_data (
			connection INTEGER,
			key        TEXT,
			value      TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id       TEXT UNIQUE,
			coin     TEXT,
			platform TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS fiat_transfers (
			id          TEXT,
			date        TEXT,
			origin      TEXT,
			destination TEXT,
			amount      REAL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id         TEXT,
			date       TEXT,
			pair       TEXT,
			unit_price REAL,
			unit_size  REAL,
			fee        REAL,
			side       TEXT,
			platform   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_pair ON orders(pair, date)`,
		`CREATE TABLE IF NOT EXISTS rewards (
			id          TEXT,
			date        TEXT,
			coin        TEXT,
			unit_price  REAL,
			unit_size   REAL,
			type        TEXT,
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_coin ON rewards(coin, date)`,
		`CREATE TABLE IF NOT EXISTS transfers (
			id          TEXT,
			date        TEXT,
			origin      TEXT,
			destination TEXT,
			coin        TEXT,
			unit_size   REAL,
			fee         REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transfers_coin ON transfers(coin, date)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) Append(entries ...entry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if err := e.Write(s.db); err != nil {
			return fmt.Errorf("write entry: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) CoinEvents(symbol string) ([]record.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT date, side, unit_price, unit_size, fee
		FROM orders
		WHERE pair = ?

		UNION ALL

		SELECT date, 'buy' AS side, unit_price, unit_size, 0.0 AS fee
		FROM rewards
		WHERE coin = ?

		UNION ALL

		SELECT date, 'sell' AS side, 0.0 AS unit_price, fee AS unit_size, 0.0 AS fee
		FROM transfers
		WHERE coin = ?
		AND fee > 0.0

		ORDER BY date ASC`,
		symbol+"-USD", symbol, symbol,
	)
	if err != nil {
		return nil, fmt.Errorf("query coin events: %w", err)
	}
	defer rows.Close()

	var events []record.Event
	for rows.Next() {
		var ev record.Event
		var side string
		if err := rows.Scan(&ev.Date, &side, &ev.UnitPrice, &ev.Quantity, &ev.Fee); err != nil {
			return nil, fmt.Errorf("scan coin event: %w", err)
		}
		ev.Side = record.Side(side)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) Connections() ([]entry.PlatformConnection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT c.id, c.nickname, c.platform, d.key, d.value
		FROM connections c
		LEFT JOIN connection_data d ON d.connection = c.id
		ORDER BY c.id, d.rowid`)
	if err != nil {
		return nil, fmt.Errorf("query connections: %w", err)
	}
	defer rows.Close()

	var conns []entry.PlatformConnection
	lastID := int64(-1)
	for rows.Next() {
		var (
			id                 int64
			nickname, platform string
			key, value         sql.NullString
		)
		if err := rows.Scan(&id, &nickname, &platform, &key, &value); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		if id != lastID {
			conns = append(conns, entry.PlatformConnection{Nickname: nickname, Platform: platform})
			lastID = id
		}
		if key.Valid {
			last := &conns[len(conns)-1]
			last.Data = append(last.Data, entry.ConnectionData{Key: key.String, Value: value.String})
		}
	}
	return conns, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
