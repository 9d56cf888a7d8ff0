package repository

import (
	"context"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PhotoRepository struct {
	db *pgxpool.Pool
}

func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]catalog.Photo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, item_id, url, order_index, created_at
		 FROM catalog_photos WHERE item_id = $1 ORDER BY order_index, created_at`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list photos", err)
	}
	defer rows.Close()

	var photos []catalog.Photo
	for rows.Next() {
		var p catalog.Photo
		if err := rows.Scan(&p.ID, &p.ItemID, &p.URL, &p.OrderIndex, &p.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan photo row", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read photo rows", err)
	}
	return photos, nil
}

func (r *PhotoRepository) UpdateOrder(ctx context.Context, id uuid.UUID, newOrder int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE catalog_photos SET order_index = $2 WHERE id = $1`, id, newOrder)
	if err != nil {
		return infra.WrapRepoErr("failed to update photo order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("photo not found", nil, infra.KindNotFound)
	}
	return nil
}
