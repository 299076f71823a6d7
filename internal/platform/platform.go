// Package platform defines the sync-client boundary: sources that produce
// portfolio entries, and the registry that rebuilds them from saved
// connections.
package platform

import (
	"context"

	"github.com/bwhitmire55/cryptfolio/internal/entry"
)

// Client is a connected platform that can be synced for new entries.
type Client interface {
	// Name is the platform's registry key, e.g. "csvfile".
	Name() string

	// ConnectionData returns the parameters needed to rebuild this client,
	// in the order the constructor expects them.
	ConnectionData() []entry.ConnectionData

	// Sync pulls the platform's transaction history as entries.
	Sync(ctx context.Context) ([]entry.Entry, error)
}
