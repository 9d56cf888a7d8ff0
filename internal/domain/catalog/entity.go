package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Item is a rentable catalog entry (inflatable structure, service or
// consumable). Catalog content is owned by the external catalog store; this
// core only reads snapshots of it, so fields are exported plain values.
type Item struct {
	ID                uuid.UUID
	Name              string
	PriceOneDayCents  int64
	PriceTwoDaysCents *int64
	HasCustomPricing  bool
	OrderIndex        int
	Active            bool
	CreatedAt         time.Time
}

func (i Item) HasTwoDayPrice() bool {
	return i.PriceTwoDaysCents != nil
}

// Photo belongs to an item's gallery. Its OrderIndex follows the same dense
// 1..N contract as Item.OrderIndex.
type Photo struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	URL        string
	OrderIndex int
	CreatedAt  time.Time
}
