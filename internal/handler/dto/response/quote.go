package response

import (
	"time"

	"castle-rentals/internal/domain/quote"
	"castle-rentals/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Step           string               `json:"step"`
	Event          QuoteEventResponse   `json:"event"`
	Contact        QuoteContactResponse `json:"contact"`
	GlobalDuration string               `json:"globalDuration"`
	GlobalDays     int                  `json:"globalDays,omitempty"`
	Entries        []QuoteEntryResponse `json:"entries"`
	EstimateCents  int64                `json:"estimateCents"`
	QuoteRequired  bool                 `json:"quoteRequired"`
}

type QuoteEventResponse struct {
	EventType string    `json:"eventType"`
	EventDate time.Time `json:"eventDate"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Notes     string    `json:"notes"`
}

type QuoteContactResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type QuoteEntryResponse struct {
	ItemID     uuid.UUID `json:"itemId"`
	ItemName   string    `json:"itemName"`
	Duration   string    `json:"duration"`
	CustomDays int       `json:"customDays,omitempty"`
	FromStore  bool      `json:"fromCart"`
	Overridden bool      `json:"overridden"`
}

func FromQuoteView(view *commands.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{
		Step: string(view.Step),
		Event: QuoteEventResponse{
			EventType: view.Event.EventType,
			EventDate: view.Event.EventDate,
			Address:   view.Event.Address,
			City:      view.Event.City,
			Notes:     view.Event.Notes,
		},
		Contact: QuoteContactResponse{
			Name:    view.Contact.Name,
			Email:   view.Contact.Email,
			Phone:   view.Contact.Phone,
			Message: view.Contact.Message,
		},
		GlobalDuration: string(view.GlobalDuration),
		GlobalDays:     view.GlobalDays,
		Entries:        make([]QuoteEntryResponse, 0, len(view.Entries)),
		EstimateCents:  view.EstimateCents,
		QuoteRequired:  view.QuoteRequired,
	}
	for _, e := range view.Entries {
		resp.Entries = append(resp.Entries, QuoteEntryResponse{
			ItemID:     e.ItemID,
			ItemName:   e.ItemName,
			Duration:   string(e.Duration),
			CustomDays: e.CustomDays,
			FromStore:  e.FromStore,
			Overridden: e.Overridden,
		})
	}
	return resp
}

type QuoteSubmittedResponse struct {
	SummaryID     uuid.UUID `json:"summaryId"`
	EstimateCents int64     `json:"estimateCents"`
	QuoteRequired bool      `json:"quoteRequired"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

func FromSummary(s *quote.Summary) *QuoteSubmittedResponse {
	return &QuoteSubmittedResponse{
		SummaryID:     s.ID,
		EstimateCents: s.EstimateCents,
		QuoteRequired: s.QuoteRequired,
		SubmittedAt:   s.SubmittedAt,
	}
}
