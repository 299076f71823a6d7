// Package app wires the store, the platform registry and the recording
// engine into one portfolio coordinator.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bwhitmire55/cryptfolio/internal/entry"
	"github.com/bwhitmire55/cryptfolio/internal/platform"
	"github.com/bwhitmire55/cryptfolio/internal/record"
	"github.com/bwhitmire55/cryptfolio/internal/store"
)

var (
	// ErrPlatformExists is returned when a platform:nickname pair is
	// already connected.
	ErrPlatformExists = errors.New("platform already connected")

	// ErrUnknownHandle is returned for a handle the app never issued.
	ErrUnknownHandle = errors.New("unknown platform handle")
)

// Handle is an opaque token identifying a connected platform. The app owns
// the clients; callers only ever hold handles.
type Handle int

// App coordinates the portfolio: persisted entries, connected platforms and
// per-coin snapshots.
type App struct {
	store    store.Store
	registry *platform.Registry

	mu         sync.Mutex
	clients    map[Handle]platform.Client
	keys       map[string]Handle // "platform:nickname" -> handle
	nextHandle Handle

	snapshots *gocache.Cache
}

// New creates an App over the given store and registry. Snapshots are
// cached for snapshotTTL and dropped whenever new entries arrive.
func New(s store.Store, r *platform.Registry, snapshotTTL time.Duration) *App {
	return &App{
		store:     s,
		registry:  r,
		clients:   make(map[Handle]platform.Client),
		keys:      make(map[string]Handle),
		snapshots: gocache.New(snapshotTTL, 2*snapshotTTL),
	}
}

// AddPlatform connects a new platform client under a nickname, persists the
// connection and returns the client's handle.
func (a *App) AddPlatform(nickname string, c platform.Client) (Handle, error) {
	h, err := a.attach(nickname, c)
	if err != nil {
		return 0, err
	}

	conn := &entry.PlatformConnection{
		Nickname: nickname,
		Platform: c.Name(),
		Data:     c.ConnectionData(),
	}
	if err := a.store.Append(conn); err != nil {
		a.detach(h)
		return 0, fmt.Errorf("persist connection: %w", err)
	}

	log.Printf("[INFO] platform connected: %s:%s", c.Name(), nickname)
	return h, nil
}

// LoadConnections resolves every saved connection through the registry and
// attaches the resulting clients. Connections for unknown platforms are
// skipped with a warning, not fatal: the rest of the portfolio still works.
func (a *App) LoadConnections() error {
	conns, err := a.store.Connections()
	if err != nil {
		return fmt.Errorf("load connections: %w", err)
	}
	for _, conn := range conns {
		c, err := a.registry.Resolve(conn)
		if err != nil {
			log.Printf("[WARN] connection %s:%s: %v, skipping", conn.Platform, conn.Nickname, err)
			continue
		}
		if _, err := a.attach(conn.Nickname, c); err != nil {
			log.Printf("[WARN] connection %s:%s: %v, skipping", conn.Platform, conn.Nickname, err)
		}
	}
	return nil
}

// Handles returns the handles of all connected platforms.
func (a *App) Handles() []Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	handles := make([]Handle, 0, len(a.clients))
	for h := range a.clients {
		handles = append(handles, h)
	}
	return handles
}

// Sync pulls new entries from one connected platform into the store.
func (a *App) Sync(ctx context.Context, h Handle) error {
	a.mu.Lock()
	c, ok := a.clients[h]
	a.mu.Unlock()
	if !ok {
		return ErrUnknownHandle
	}

	entries, err := c.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync %s: %w", c.Name(), err)
	}
	if err := a.store.Append(entries...); err != nil {
		return fmt.Errorf("store %s entries: %w", c.Name(), err)
	}

	a.snapshots.Flush()
	log.Printf("[INFO] synced %d entries from %s", len(entries), c.Name())
	return nil
}

// SyncAll syncs every connected platform, continuing past failures.
func (a *App) SyncAll(ctx context.Context) {
	for _, h := range a.Handles() {
		if err := a.Sync(ctx, h); err != nil {
			log.Printf("[ERROR] sync handle %d: %v", h, err)
		}
	}
}

// AddTransaction records a manually entered entry.
func (a *App) AddTransaction(e entry.Entry) error {
	if err := a.store.Append(e); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}
	a.snapshots.Flush()
	return nil
}

// CoinRecord computes the finalized snapshot for one coin symbol, rebuilding
// the record from the stored event stream. Events the engine rejects are
// skipped with a warning. Results are cached until new entries arrive or
// the TTL passes.
func (a *App) CoinRecord(symbol string) (*record.Snapshot, error) {
	if cached, ok := a.snapshots.Get(symbol); ok {
		return cached.(*record.Snapshot), nil
	}

	events, err := a.store.CoinEvents(symbol)
	if err != nil {
		return nil, fmt.Errorf("events for %s: %w", symbol, err)
	}

	r := record.NewCoinRecord(symbol)
	for _, ev := range events {
		if err := r.Apply(ev); err != nil {
			log.Printf("[WARN] %s event on %s rejected: %v", symbol, ev.Date, err)
		}
	}
	snap, err := r.Finalize()
	if err != nil {
		return nil, fmt.Errorf("finalize %s: %w", symbol, err)
	}
	for _, w := range snap.Oversold {
		log.Printf("[WARN] %s oversold on %s: %v units unmatched", symbol, w.SellDate, w.Unmatched)
	}

	a.snapshots.Set(symbol, snap, gocache.DefaultExpiration)
	return snap, nil
}

func (a *App) attach(nickname string, c platform.Client) (Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := c.Name() + ":" + nickname
	if _, ok := a.keys[key]; ok {
		return 0, fmt.Errorf("%w: %s", ErrPlatformExists, key)
	}
	a.nextHandle++
	h := a.nextHandle
	a.clients[h] = c
	a.keys[key] = h
	return h, nil
}

func (a *App) detach(h Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for key, handle := range a.keys {
		if handle == h {
			delete(a.keys, key)
			break
		}
	}
	delete(a.clients, h)
}
