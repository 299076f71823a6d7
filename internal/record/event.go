package record

import "fmt"

// Side marks an event as an acquisition or a disposal.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Event is one buy- or sell-side event for a coin, as projected by the
// event source. Streams are expected sorted ascending by date.
type Event struct {
	Date      string
	Side      Side
	UnitPrice float64
	Quantity  float64
	Fee       float64
}

// Apply feeds the event into the record. Unknown sides are malformed.
func (r *CoinRecord) Apply(ev Event) error {
	switch ev.Side {
	case SideBuy:
		return r.AddBuy(ev.Date, ev.UnitPrice, ev.Quantity, ev.Fee)
	case SideSell:
		return r.AddSell(ev.Date, ev.UnitPrice, ev.Quantity, ev.Fee)
	}
	return fmt.Errorf("%w: unknown side %q", ErrBadEvent, ev.Side)
}
