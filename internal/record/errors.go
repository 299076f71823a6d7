package record

import "errors"

var (
	// ErrDateParse is returned when a transaction date matches none of the
	// accepted formats.
	ErrDateParse = errors.New("unparseable date")

	// ErrEmptyLedger is returned by the ledger when no open lot remains.
	ErrEmptyLedger = errors.New("empty lot ledger")

	// ErrInsufficientLot is returned when a consume exceeds a lot's remaining
	// quantity. It indicates a bug in the matching loop, not bad input.
	ErrInsufficientLot = errors.New("insufficient lot quantity")

	// ErrFinalized is returned when Finalize is called a second time on the
	// same record. The ledger is drained in place, so a re-run would
	// double-count; rebuild the record from the event source instead.
	ErrFinalized = errors.New("record already finalized")

	// ErrBadEvent is returned by AddBuy/AddSell for a malformed event. The
	// event is rejected; the record stays usable.
	ErrBadEvent = errors.New("malformed event")
)
