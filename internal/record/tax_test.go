package record

import "testing"

func TestClassify_HoldingPeriodBoundaries(t *testing.T) {
	tests := []struct {
		buy      string
		sell     string
		days     int
		category TaxCategory
	}{
		{"2023-01-01T00:00:00Z", "2023-12-31T00:00:00Z", 364, ShortTermCapitalGains},
		{"2023-01-01T00:00:00Z", "2024-01-01T00:00:00Z", 365, LongTermCapitalGains},
		{"2023-01-01T00:00:00Z", "2024-01-02T00:00:00Z", 366, LongTermCapitalGains},
		{"2023-06-15T00:00:00Z", "2023-06-16T00:00:00Z", 1, ShortTermCapitalGains},
	}
	for _, tt := range tests {
		rec, err := classify(tt.buy, tt.sell, 10, 20, 1, 10)
		if err != nil {
			t.Fatalf("classify(%s, %s): %v", tt.buy, tt.sell, err)
		}
		if rec.HoldingDays != tt.days {
			t.Errorf("%s -> %s: got %d days, want %d", tt.buy, tt.sell, rec.HoldingDays, tt.days)
		}
		if rec.Category != tt.category {
			t.Errorf("%s -> %s: got %s, want %s", tt.buy, tt.sell, rec.Category, tt.category)
		}
	}
}

func TestClassify_RatesAndLiability(t *testing.T) {
	short, err := classify("2023-01-01T00:00:00Z", "2023-03-01T00:00:00Z", 10, 30, 5, 100)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if short.TaxRate != 0.22 {
		t.Errorf("short-term rate: got %v, want 0.22", short.TaxRate)
	}
	if !almostEqual(short.Liability, 22) {
		t.Errorf("short-term liability: got %v, want 22", short.Liability)
	}

	long, err := classify("2022-01-01T00:00:00Z", "2023-06-01T00:00:00Z", 10, 30, 5, 100)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if long.TaxRate != 0.15 {
		t.Errorf("long-term rate: got %v, want 0.15", long.TaxRate)
	}
	if !almostEqual(long.Liability, 15) {
		t.Errorf("long-term liability: got %v, want 15", long.Liability)
	}
}

func TestClassify_BadDateFails(t *testing.T) {
	if _, err := classify("not-a-date", "2023-01-01T00:00:00Z", 1, 2, 1, 1); err == nil {
		t.Error("expected error for unparseable buy date")
	}
	if _, err := classify("2023-01-01T00:00:00Z", "01/02/2023", 1, 2, 1, 1); err == nil {
		t.Error("expected error for unparseable sell date")
	}
}
