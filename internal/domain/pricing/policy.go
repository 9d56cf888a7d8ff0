package pricing

import (
	"math"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/pkg/errs"
)

var ErrNoTwoDayPrice = errs.New("item has no two-day price")

type Policy interface {
	PriceFor(item catalog.Item, d Duration) (Price, error)
}

// DegressivePolicy prices custom durations with a flat per-day discount:
// priceOneDay x max(1, days x rate). It is an approximation, not a
// compounding discount.
type DegressivePolicy struct {
	PerDayRate float64
}

func NewDegressivePolicy() *DegressivePolicy {
	return &DegressivePolicy{
		PerDayRate: 0.9,
	}
}

// ValidateDuration checks that a duration choice is representable for the
// item before any state is mutated. Quote-required items accept any duration
// since no fixed price is involved either way.
func ValidateDuration(item catalog.Item, d Duration) error {
	if d.Kind() == KindTwoDays && !item.HasCustomPricing && !item.HasTwoDayPrice() {
		return ErrNoTwoDayPrice
	}
	return nil
}

func (p *DegressivePolicy) PriceFor(item catalog.Item, d Duration) (Price, error) {
	if item.HasCustomPricing {
		return QuoteRequired(), nil
	}

	switch d.Kind() {
	case KindOneDay:
		return NewPrice(item.PriceOneDayCents), nil
	case KindTwoDays:
		if item.PriceTwoDaysCents == nil {
			return Price{}, ErrNoTwoDayPrice
		}
		return NewPrice(*item.PriceTwoDaysCents), nil
	case KindCustom:
		multiplier := float64(d.CustomDays()) * p.PerDayRate
		if multiplier < 1 {
			multiplier = 1
		}
		// Rounded to the nearest whole currency unit, not the nearest cent.
		units := math.Round(float64(item.PriceOneDayCents) * multiplier / 100.0)
		return NewPrice(int64(units) * 100), nil
	default:
		return Price{}, ErrUnknownDuration
	}
}
