package record

// TaxCategory classifies a disposal by holding period.
type TaxCategory string

const (
	ShortTermCapitalGains TaxCategory = "SHORT_TERM"
	LongTermCapitalGains  TaxCategory = "LONG_TERM"
)

// Rate returns the flat tax rate for the category. The rates are a
// simplified approximation, not a live tax table.
func (c TaxCategory) Rate() float64 {
	if c == ShortTermCapitalGains {
		return 0.22
	}
	return 0.15
}

// longTermThresholdDays is the holding period, in whole days, at which a
// disposal stops being short-term. Exactly 365 days is long-term.
const longTermThresholdDays = 365

// TaxRecord describes one taxable disposal slice: the portion of a sell
// matched against a single buy lot.
type TaxRecord struct {
	BuyDate     string
	SellDate    string
	BuyPrice    float64
	SellPrice   float64
	Quantity    float64
	HoldingDays int
	Category    TaxCategory
	Profit      float64
	TaxRate     float64
	Liability   float64
}

// classify builds the tax record for a disposal slice. Either date failing
// to parse aborts the whole finalize pass: silently dropping a record would
// corrupt the aggregate totals.
func classify(buyDate, sellDate string, buyPrice, sellPrice, quantity, profit float64) (TaxRecord, error) {
	bought, err := ParseDate(buyDate)
	if err != nil {
		return TaxRecord{}, err
	}
	sold, err := ParseDate(sellDate)
	if err != nil {
		return TaxRecord{}, err
	}

	days := int(sold.Sub(bought).Hours() / 24)
	category := LongTermCapitalGains
	if days < longTermThresholdDays {
		category = ShortTermCapitalGains
	}

	return TaxRecord{
		BuyDate:     buyDate,
		SellDate:    sellDate,
		BuyPrice:    buyPrice,
		SellPrice:   sellPrice,
		Quantity:    quantity,
		HoldingDays: days,
		Category:    category,
		Profit:      profit,
		TaxRate:     category.Rate(),
		Liability:   profit * category.Rate(),
	}, nil
}
