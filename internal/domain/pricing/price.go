package pricing

// Price is either a concrete amount in cents or the quote-required sentinel.
// A quote-required price has no numeric value and must never be folded into a
// numeric total.
type Price struct {
	cents         int64
	quoteRequired bool
}

func NewPrice(cents int64) Price {
	return Price{cents: cents}
}

func QuoteRequired() Price {
	return Price{quoteRequired: true}
}

func (p Price) IsQuoteRequired() bool {
	return p.quoteRequired
}

// Cents returns 0 for a quote-required price; callers check IsQuoteRequired
// before summing.
func (p Price) Cents() int64 {
	if p.quoteRequired {
		return 0
	}
	return p.cents
}

func (p Price) Mul(qty int) Price {
	if p.quoteRequired {
		return p
	}
	return Price{cents: p.cents * int64(qty)}
}
