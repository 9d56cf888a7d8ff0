package pricing

import (
	"fmt"

	"castle-rentals/internal/pkg/errs"
)

var (
	ErrInvalidCustomDays = errs.New("custom duration days must be between 3 and 30")
	ErrUnknownDuration   = errs.New("unknown duration kind")
)

type DurationKind string

const (
	KindOneDay  DurationKind = "one_day"
	KindTwoDays DurationKind = "two_days"
	KindCustom  DurationKind = "custom"
)

const (
	MinCustomDays = 3
	MaxCustomDays = 30
)

// Duration is the rental duration choice. Custom carries its day count so an
// invalid combination (a day count next to a fixed duration) cannot be
// represented.
type Duration struct {
	kind       DurationKind
	customDays int
}

func OneDay() Duration {
	return Duration{kind: KindOneDay}
}

func TwoDays() Duration {
	return Duration{kind: KindTwoDays}
}

func Custom(days int) (Duration, error) {
	if days < MinCustomDays || days > MaxCustomDays {
		return Duration{}, ErrInvalidCustomDays
	}
	return Duration{kind: KindCustom, customDays: days}, nil
}

// Parse builds a Duration from its wire form. A nil customDays for the custom
// kind defaults to the minimum of 3 days.
func Parse(kind string, customDays *int) (Duration, error) {
	switch DurationKind(kind) {
	case KindOneDay:
		return OneDay(), nil
	case KindTwoDays:
		return TwoDays(), nil
	case KindCustom:
		days := MinCustomDays
		if customDays != nil {
			days = *customDays
		}
		return Custom(days)
	default:
		return Duration{}, errs.Mark(fmt.Errorf("duration kind %q", kind), ErrUnknownDuration)
	}
}

func (d Duration) Kind() DurationKind {
	return d.kind
}

func (d Duration) CustomDays() int {
	return d.customDays
}

func (d Duration) IsZero() bool {
	return d.kind == ""
}

func (d Duration) Equal(other Duration) bool {
	return d.kind == other.kind && d.customDays == other.customDays
}

func (d Duration) String() string {
	if d.kind == KindCustom {
		return fmt.Sprintf("%s(%dd)", d.kind, d.customDays)
	}
	return string(d.kind)
}
