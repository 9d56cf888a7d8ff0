package readstore

import (
	"context"
	"errors"

	"castle-rentals/internal/infra"
	"castle-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogReadStore serves the storefront and the wizard's step-2 item list.
// Reads are separated from the command-side repository so the two can evolve
// their queries independently.
type CatalogReadStore struct {
	db *pgxpool.Pool
}

func NewCatalogReadStore(db *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListActive(ctx context.Context) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, price_one_day_cents, price_two_days_cents, has_custom_pricing, order_index, created_at
		 FROM catalog_items WHERE active ORDER BY order_index, created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active catalog items", err)
	}
	defer rows.Close()

	var views []*queries.ItemView
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog item rows", err)
	}
	return views, nil
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, price_one_day_cents, price_two_days_cents, has_custom_pricing, order_index, created_at
		 FROM catalog_items WHERE id = $1 AND active`, id)

	view, err := scanItemView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("catalog item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog item by ID", err)
	}

	view.Photos, err = r.photosForItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *CatalogReadStore) photosForItem(ctx context.Context, itemID uuid.UUID) ([]queries.PhotoView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, url, order_index FROM catalog_photos
		 WHERE item_id = $1 ORDER BY order_index, created_at`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item photos", err)
	}
	defer rows.Close()

	var photos []queries.PhotoView
	for rows.Next() {
		var p queries.PhotoView
		if err := rows.Scan(&p.ID, &p.URL, &p.OrderIndex); err != nil {
			return nil, infra.WrapRepoErr("failed to scan photo row", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read photo rows", err)
	}
	return photos, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var v queries.ItemView
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.PriceOneDayCents,
		&v.PriceTwoDaysCents,
		&v.HasCustomPricing,
		&v.OrderIndex,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
