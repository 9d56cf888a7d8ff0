package request

import (
	"time"

	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/domain/quote"
)

type QuoteEventRequest struct {
	EventType  string    `json:"eventType"`
	EventDate  time.Time `json:"eventDate"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Notes      string    `json:"notes"`
	Duration   *string   `json:"duration,omitempty"`
	CustomDays *int      `json:"customDays,omitempty"`
}

func (r QuoteEventRequest) ToDomain() quote.EventDetails {
	return quote.EventDetails{
		EventType: r.EventType,
		EventDate: r.EventDate,
		Address:   r.Address,
		City:      r.City,
		Notes:     r.Notes,
	}
}

// ParseDuration returns the global duration selector value, or nil when the
// request leaves it untouched.
func (r QuoteEventRequest) ParseDuration() (*pricing.Duration, error) {
	if r.Duration == nil {
		return nil, nil
	}
	d, err := pricing.Parse(*r.Duration, r.CustomDays)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type QuoteContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r QuoteContactRequest) ToDomain() quote.ContactDetails {
	return quote.ContactDetails{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// QuoteItemRequest toggles an item in step 2 or overrides its duration.
type QuoteItemRequest struct {
	Selected   *bool   `json:"selected,omitempty"`
	Duration   *string `json:"duration,omitempty"`
	CustomDays *int    `json:"customDays,omitempty"`
}

func (r QuoteItemRequest) ParseDuration() (*pricing.Duration, error) {
	if r.Duration == nil {
		return nil, nil
	}
	d, err := pricing.Parse(*r.Duration, r.CustomDays)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
