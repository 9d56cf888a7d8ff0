package response

import (
	"castle-rentals/internal/usecase/commands"

	"github.com/google/uuid"
)

type CartResponse struct {
	Lines            []CartLineResponse `json:"lines"`
	ItemCount        int                `json:"itemCount"`
	TotalCents       int64              `json:"totalCents"`
	HasQuoteRequired bool               `json:"hasQuoteRequired"`
}

type CartLineResponse struct {
	ItemID        uuid.UUID `json:"itemId"`
	ItemName      string    `json:"itemName"`
	Duration      string    `json:"duration"`
	CustomDays    int       `json:"customDays,omitempty"`
	Quantity      int       `json:"quantity"`
	UnitCents     int64     `json:"unitCents"`
	LineCents     int64     `json:"lineCents"`
	QuoteRequired bool      `json:"quoteRequired"`
}

func FromCartView(view *commands.CartView) *CartResponse {
	resp := &CartResponse{
		Lines:            make([]CartLineResponse, 0, len(view.Lines)),
		ItemCount:        view.ItemCount,
		TotalCents:       view.TotalCents,
		HasQuoteRequired: view.HasQuoteRequired,
	}
	for _, l := range view.Lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ItemID:        l.ItemID,
			ItemName:      l.ItemName,
			Duration:      string(l.Duration),
			CustomDays:    l.CustomDays,
			Quantity:      l.Quantity,
			UnitCents:     l.UnitCents,
			LineCents:     l.LineCents,
			QuoteRequired: l.QuoteRequired,
		})
	}
	return resp
}
