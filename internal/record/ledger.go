package record

// lot is a live projection of a buy event: its remaining quantity shrinks as
// sells consume it and the lot is dropped once it reaches exactly zero.
type lot struct {
	date      string
	unitPrice float64
	remaining float64
}

// ledger is the FIFO queue of open buy lots. Callers append buys already
// sorted ascending by date; the ledger never re-sorts.
type ledger struct {
	lots []lot
}

func (l *ledger) push(date string, unitPrice, quantity float64) {
	l.lots = append(l.lots, lot{date: date, unitPrice: unitPrice, remaining: quantity})
}

// oldest returns the oldest lot with remaining quantity, or ErrEmptyLedger.
func (l *ledger) oldest() (*lot, error) {
	if len(l.lots) == 0 {
		return nil, ErrEmptyLedger
	}
	return &l.lots[0], nil
}

// consume removes quantity from the oldest lot, dropping the lot once fully
// spent. Consuming more than the lot holds is ErrInsufficientLot.
func (l *ledger) consume(quantity float64) error {
	head, err := l.oldest()
	if err != nil {
		return err
	}
	if quantity > head.remaining {
		return ErrInsufficientLot
	}
	head.remaining -= quantity
	if head.remaining == 0 {
		l.lots = l.lots[1:]
	}
	return nil
}
