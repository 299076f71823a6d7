package platform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bwhitmire55/cryptfolio/internal/entry"
)

var (
	// ErrUnknownPlatform is returned when a saved connection names a
	// platform no constructor was registered for.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrPlatformRegistered is returned when a constructor name collides.
	ErrPlatformRegistered = errors.New("platform already registered")
)

// Constructor rebuilds a client from its saved connection data.
type Constructor func(conn entry.PlatformConnection) (Client, error)

// Registry maps platform names to client constructors. Connections loaded
// from the store are resolved through it once at startup, instead of
// switching on platform-name strings at every use site.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry returns a registry with the built-in platforms registered.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]Constructor)}
	r.constructors[csvfileName] = newCSVFileFromConnection
	return r
}

// Register adds a constructor for a platform name.
func (r *Registry) Register(name string, c Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.constructors[name]; ok {
		return fmt.Errorf("%w: %s", ErrPlatformRegistered, name)
	}
	r.constructors[name] = c
	return nil
}

// Resolve rebuilds the client for a saved connection.
func (r *Registry) Resolve(conn entry.PlatformConnection) (Client, error) {
	r.mu.RLock()
	c, ok := r.constructors[conn.Platform]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, conn.Platform)
	}
	return c(conn)
}
