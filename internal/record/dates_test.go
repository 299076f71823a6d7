package record

import (
	"errors"
	"testing"
)

func TestParseDate_AcceptedFormats(t *testing.T) {
	tests := []string{
		"2021-06-01T14:30:00Z",
		"2021-06-01T14:30:00.123456Z",
		"2021-06-01 14:30:00.123456+00",
	}
	for _, date := range tests {
		parsed, err := ParseDate(date)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", date, err)
			continue
		}
		if parsed.Year() != 2021 || parsed.Hour() != 14 {
			t.Errorf("ParseDate(%q): got %v", date, parsed)
		}
	}
}

func TestParseDate_Rejected(t *testing.T) {
	tests := []string{
		"",
		"2021-06-01",
		"06/01/2021 14:30",
		"yesterday",
	}
	for _, date := range tests {
		if _, err := ParseDate(date); !errors.Is(err, ErrDateParse) {
			t.Errorf("ParseDate(%q): got %v, want ErrDateParse", date, err)
		}
	}
}
