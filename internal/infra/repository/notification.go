package repository

import (
	"context"
	"encoding/json"

	"castle-rentals/internal/domain/quote"
	"castle-rentals/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRelay delivers a submitted quote by enqueueing a job row that
// the external relay worker drains. Delivery failure surfaces to the caller
// so the wizard is not cleared on a lost submission.
type NotificationRelay struct {
	db *pgxpool.Pool
}

func NewNotificationRelay(db *pgxpool.Pool) *NotificationRelay {
	return &NotificationRelay{db: db}
}

func (r *NotificationRelay) Submit(ctx context.Context, summary quote.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return infra.WrapRepoErr("failed to encode quote summary", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		 VALUES ($1, 'email', 'quote.submitted', $2, $3)`,
		summary.ID, payload, summary.SubmittedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue quote notification", err)
	}
	return nil
}
