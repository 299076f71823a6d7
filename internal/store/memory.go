package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bwhitmire55/cryptfolio/internal/entry"
	"github.com/bwhitmire55/cryptfolio/internal/record"
)

// MemoryStore keeps entries in memory. It backs the app when no database
// path is configured, and the tests.
type MemoryStore struct {
	mu          sync.Mutex
	orders      []entry.CoinOrder
	rewards     []entry.CoinReward
	transfers   []entry.CoinTransfer
	fiat        []entry.FiatTransfer
	accounts    []entry.CoinAccount
	connections []entry.PlatformConnection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(entries ...entry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		switch v := e.(type) {
		case *entry.CoinOrder:
			s.orders = append(s.orders, *v)
		case *entry.CoinReward:
			s.rewards = append(s.rewards, *v)
		case *entry.CoinTransfer:
			s.transfers = append(s.transfers, *v)
		case *entry.FiatTransfer:
			s.fiat = append(s.fiat, *v)
		case *entry.CoinAccount:
			s.accounts = append(s.accounts, *v)
		case *entry.PlatformConnection:
			s.connections = append(s.connections, *v)
		default:
			return fmt.Errorf("unknown entry kind %T", e)
		}
	}
	return nil
}

// CoinEvents applies the same projection as the SQLite store, including its
// lexicographic date ordering.
func (s *MemoryStore) CoinEvents(symbol string) ([]record.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []record.Event
	pair := symbol + "-USD"
	for _, o := range s.orders {
		if o.Pair != pair {
			continue
		}
		events = append(events, record.Event{
			Date:      o.Date,
			Side:      record.Side(o.Side),
			UnitPrice: o.UnitPrice,
			Quantity:  o.UnitSize,
			Fee:       o.Fee,
		})
	}
	for _, r := range s.rewards {
		if r.Coin != symbol {
			continue
		}
		events = append(events, record.Event{
			Date:      r.Date,
			Side:      record.SideBuy,
			UnitPrice: r.UnitPrice,
			Quantity:  r.UnitSize,
		})
	}
	for _, t := range s.transfers {
		if t.Coin != symbol || t.Fee <= 0 {
			continue
		}
		events = append(events, record.Event{
			Date:     t.Date,
			Side:     record.SideSell,
			Quantity: t.Fee,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events, nil
}

func (s *MemoryStore) Connections() ([]entry.PlatformConnection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns := make([]entry.PlatformConnection, len(s.connections))
	copy(conns, s.connections)
	return conns, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
