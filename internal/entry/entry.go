// Package entry defines the closed set of transaction kinds cryptfolio
// records, each writable through the same persistence interface.
package entry

import (
	"database/sql"

	"github.com/google/uuid"
)

// Entry is a single portfolio event that knows how to persist itself.
// Platform sync clients return batches of entries; the store writes them.
type Entry interface {
	Write(db *sql.DB) error
}

// NewID returns a fresh identifier for entries created locally rather than
// imported from a platform.
func NewID() string {
	return uuid.NewString()
}
