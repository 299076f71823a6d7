package record

import "fmt"

// transaction is one buy-side or sell-side event for a single coin.
type transaction struct {
	date      string
	unitPrice float64
	quantity  float64
	fee       float64
}

// OpenLot is a still-held acquisition surviving the matching pass.
type OpenLot struct {
	Date      string
	UnitPrice float64
	Quantity  float64
}

// OversoldWarning reports a sell whose quantity exceeded everything ever
// bought. The unmatched remainder is skipped, not fabricated.
type OversoldWarning struct {
	SellDate  string
	Unmatched float64
}

// Snapshot is the finalized state of one coin's full event history.
type Snapshot struct {
	Symbol          string
	Shares          float64
	AverageCost     float64
	GrossProfit     float64
	NetProfit       float64
	TotalInvested   float64
	CurrentInvested float64
	TotalFees       float64
	FullyDivested   bool
	OpenLots        []OpenLot
	TaxRecords      []TaxRecord
	Oversold        []OversoldWarning
}

// CoinRecord accumulates the buy and sell events of a single coin and, on
// Finalize, matches sells against buys oldest-first to produce a Snapshot.
//
// A CoinRecord is built from scratch for every computation: events go in
// sorted ascending by date, Finalize runs exactly once, and any further data
// means building a fresh record. It is not safe for concurrent use; callers
// computing several coins in parallel use one record per coin.
type CoinRecord struct {
	symbol    string
	buys      []transaction
	sells     []transaction
	finalized bool
}

// NewCoinRecord creates an empty record for the given coin symbol.
func NewCoinRecord(symbol string) *CoinRecord {
	return &CoinRecord{symbol: symbol}
}

// AddBuy records an acquisition: an order fill or an earned reward. A reward
// may carry a zero unit price. Malformed events are rejected individually
// and leave the record untouched.
func (r *CoinRecord) AddBuy(date string, unitPrice, quantity, fee float64) error {
	if _, err := ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEvent, err)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: buy quantity %v must be positive", ErrBadEvent, quantity)
	}
	if unitPrice < 0 || fee < 0 {
		return fmt.Errorf("%w: negative price or fee", ErrBadEvent)
	}
	r.buys = append(r.buys, transaction{date: date, unitPrice: unitPrice, quantity: quantity, fee: fee})
	return nil
}

// AddSell records a disposal: an order fill or a fee-triggering transfer. A
// zero-quantity sell is legal; it contributes its fee and nothing else.
func (r *CoinRecord) AddSell(date string, unitPrice, quantity, fee float64) error {
	if _, err := ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEvent, err)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: sell quantity %v must not be negative", ErrBadEvent, quantity)
	}
	if unitPrice < 0 || fee < 0 {
		return fmt.Errorf("%w: negative price or fee", ErrBadEvent)
	}
	r.sells = append(r.sells, transaction{date: date, unitPrice: unitPrice, quantity: quantity, fee: fee})
	return nil
}

// Finalize matches all sells against the buy lots in FIFO order and folds
// the results into a Snapshot. It consumes the record: a second call
// returns ErrFinalized.
func (r *CoinRecord) Finalize() (*Snapshot, error) {
	if r.finalized {
		return nil, ErrFinalized
	}
	r.finalized = true

	snap := &Snapshot{Symbol: r.symbol}
	var book ledger

	for _, buy := range r.buys {
		snap.TotalFees += buy.fee
		book.push(buy.date, buy.unitPrice, buy.quantity)
	}

	for _, sell := range r.sells {
		// The fee is charged once per sell, regardless of how many lots
		// the sell splits across, and even for zero-quantity sells.
		snap.TotalFees += sell.fee
		if err := r.processSell(snap, &book, sell); err != nil {
			return nil, err
		}
	}

	for _, open := range book.lots {
		snap.Shares += open.remaining
		snap.CurrentInvested += open.unitPrice * open.remaining
		snap.OpenLots = append(snap.OpenLots, OpenLot{
			Date:      open.date,
			UnitPrice: open.unitPrice,
			Quantity:  open.remaining,
		})
	}
	snap.TotalInvested += snap.CurrentInvested
	if snap.Shares > 0 {
		snap.AverageCost = snap.CurrentInvested / snap.Shares
	} else {
		snap.FullyDivested = true
	}
	snap.NetProfit = snap.GrossProfit - snap.TotalFees

	return snap, nil
}

// processSell drains one sell against the oldest open lots, emitting one
// disposal slice per lot touched.
func (r *CoinRecord) processSell(snap *Snapshot, book *ledger, sell transaction) error {
	remaining := sell.quantity
	for remaining > 0 {
		head, err := book.oldest()
		if err != nil {
			// Sold more than was ever bought. Skip the unmatched
			// remainder and keep processing later sells.
			snap.Oversold = append(snap.Oversold, OversoldWarning{
				SellDate:  sell.date,
				Unmatched: remaining,
			})
			return nil
		}

		matched := remaining
		if head.remaining < matched {
			matched = head.remaining
		}

		profit := matched * (sell.unitPrice - head.unitPrice)
		snap.GrossProfit += profit
		snap.TotalInvested += matched * head.unitPrice

		rec, err := classify(head.date, sell.date, head.unitPrice, sell.unitPrice, matched, profit)
		if err != nil {
			return err
		}
		snap.TaxRecords = append(snap.TaxRecords, rec)

		if err := book.consume(matched); err != nil {
			return err
		}
		remaining -= matched
	}
	return nil
}
