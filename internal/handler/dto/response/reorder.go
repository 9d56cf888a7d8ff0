package response

import (
	"castle-rentals/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReorderResponse struct {
	Applied []OrderChangeResponse  `json:"applied"`
	Failed  []FailedChangeResponse `json:"failed,omitempty"`
}

type OrderChangeResponse struct {
	ID   uuid.UUID `json:"id"`
	From int       `json:"from"`
	To   int       `json:"to"`
}

type FailedChangeResponse struct {
	ID     uuid.UUID `json:"id"`
	Order  int       `json:"order"`
	Reason string    `json:"reason"`
}

func FromReorderResult(result *commands.ReorderResult) *ReorderResponse {
	resp := &ReorderResponse{
		Applied: make([]OrderChangeResponse, 0, len(result.Applied)),
	}
	for _, ch := range result.Applied {
		resp.Applied = append(resp.Applied, OrderChangeResponse{ID: ch.ID, From: ch.From, To: ch.To})
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, FailedChangeResponse{ID: f.ID, Order: f.Order, Reason: f.Reason})
	}
	return resp
}
