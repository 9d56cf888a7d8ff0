package response

import (
	"time"

	"castle-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	PriceOneDayCents  int64           `json:"priceOneDayCents"`
	PriceTwoDaysCents *int64          `json:"priceTwoDaysCents,omitempty"`
	HasCustomPricing  bool            `json:"hasCustomPricing"`
	OrderIndex        int             `json:"orderIndex"`
	CreatedAt         time.Time       `json:"createdAt"`
	Photos            []PhotoResponse `json:"photos,omitempty"`
}

type PhotoResponse struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	OrderIndex int       `json:"orderIndex"`
}

func FromItemView(view *queries.ItemView) (*ItemResponse, error) {
	var resp ItemResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromItemViews(views []*queries.ItemView) ([]*ItemResponse, error) {
	out := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromItemView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
