package record

import (
	"fmt"
	"time"
)

// dateLayouts are the timestamp formats accepted from synced platforms,
// tried in order.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02 15:04:05.999999-07",
}

// ParseDate parses a transaction timestamp in one of the accepted formats.
func ParseDate(date string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, date)
}
