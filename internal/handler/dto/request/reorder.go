package request

import "github.com/google/uuid"

// ReorderRequest is the single drag-and-drop entry point: move source to the
// position the target currently holds.
type ReorderRequest struct {
	SourceID uuid.UUID `json:"sourceId" binding:"required"`
	TargetID uuid.UUID `json:"targetId" binding:"required"`
}
