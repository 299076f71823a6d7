// Package store persists portfolio entries and projects them back out as
// per-coin event streams for the recording engine.
package store

import (
	"github.com/bwhitmire55/cryptfolio/internal/entry"
	"github.com/bwhitmire55/cryptfolio/internal/record"
)

// Store is the persistence boundary. Entries go in; date-ordered event
// streams and saved connections come out.
type Store interface {
	// Append writes entries in order. The first failure stops the batch.
	Append(entries ...entry.Entry) error

	// CoinEvents projects everything recorded for one coin symbol into a
	// single buy/sell event stream, sorted ascending by date: orders on
	// the coin's USD pair, rewards as zero-fee buys, and fee-bearing
	// transfers as zero-price sells of the fee quantity.
	CoinEvents(symbol string) ([]record.Event, error)

	// Connections returns every saved platform connection.
	Connections() ([]entry.PlatformConnection, error)

	Close() error
}
