package request

import (
	"castle-rentals/internal/domain/pricing"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ItemID     uuid.UUID `json:"itemId" binding:"required"`
	Duration   string    `json:"duration"`
	CustomDays *int      `json:"customDays,omitempty"`
}

// ParseDuration resolves the wire duration; an absent duration defaults to
// one day.
func (r AddCartItemRequest) ParseDuration() (pricing.Duration, error) {
	if r.Duration == "" {
		return pricing.OneDay(), nil
	}
	return pricing.Parse(r.Duration, r.CustomDays)
}

// UpdateCartLineRequest carries a quantity and/or duration edit. At least
// one field must be present.
type UpdateCartLineRequest struct {
	Quantity   *int    `json:"quantity,omitempty"`
	Duration   *string `json:"duration,omitempty"`
	CustomDays *int    `json:"customDays,omitempty"`
}

func (r UpdateCartLineRequest) IsEmpty() bool {
	return r.Quantity == nil && r.Duration == nil
}

func (r UpdateCartLineRequest) ParseDuration() (pricing.Duration, error) {
	return pricing.Parse(*r.Duration, r.CustomDays)
}
