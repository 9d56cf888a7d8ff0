package repository

import (
	"context"
	"errors"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const catalogItemColumns = `id, name, price_one_day_cents, price_two_days_cents, has_custom_pricing, order_index, active, created_at`

func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+catalogItemColumns+` FROM catalog_items WHERE id = $1`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("catalog item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog item by ID", err)
	}
	return item, nil
}

func (r *CatalogRepository) ListAll(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+catalogItemColumns+` FROM catalog_items ORDER BY order_index, created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog items", err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item row", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog item rows", err)
	}
	return items, nil
}

func (r *CatalogRepository) UpdateOrder(ctx context.Context, id uuid.UUID, newOrder int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE catalog_items SET order_index = $2 WHERE id = $1`, id, newOrder)
	if err != nil {
		return infra.WrapRepoErr("failed to update catalog item order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("catalog item not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanItem(row pgx.Row) (*catalog.Item, error) {
	var item catalog.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.PriceOneDayCents,
		&item.PriceTwoDaysCents,
		&item.HasCustomPricing,
		&item.OrderIndex,
		&item.Active,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
