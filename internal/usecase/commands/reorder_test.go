//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/usecase/commands"
	portsmock "castle-rentals/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalogFixture(n int) []catalog.Item {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{
			ID:               uuid.New(),
			Name:             "Castle",
			PriceOneDayCents: 10000,
			OrderIndex:       i + 1,
			Active:           true,
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestReorderCommands_MoveItem_WritesOnlyChangedRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := portsmock.NewMockCatalogRepository(ctrl)
	photoRepo := portsmock.NewMockPhotoRepository(ctrl)
	cmds := commands.NewReorderCommands(catalogRepo, photoRepo)

	items := catalogFixture(4)
	catalogRepo.EXPECT().ListAll(gomock.Any()).Return(items, nil)

	// moving the first item onto the second swaps exactly those two
	catalogRepo.EXPECT().UpdateOrder(gomock.Any(), items[1].ID, 1).Return(nil)
	catalogRepo.EXPECT().UpdateOrder(gomock.Any(), items[0].ID, 2).Return(nil)

	result, err := cmds.MoveItem(context.Background(), items[0].ID, items[1].ID)
	require.NoError(t, err)
	assert.Len(t, result.Applied, 2)
	assert.Empty(t, result.Failed)
}

func TestReorderCommands_MoveItem_NoopOnSameSourceAndTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := portsmock.NewMockCatalogRepository(ctrl)
	photoRepo := portsmock.NewMockPhotoRepository(ctrl)
	cmds := commands.NewReorderCommands(catalogRepo, photoRepo)

	items := catalogFixture(3)
	catalogRepo.EXPECT().ListAll(gomock.Any()).Return(items, nil)

	result, err := cmds.MoveItem(context.Background(), items[1].ID, items[1].ID)
	require.NoError(t, err)
	assert.Empty(t, result.Applied)
	assert.Empty(t, result.Failed)
}

func TestReorderCommands_MoveItem_UnknownIDIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := portsmock.NewMockCatalogRepository(ctrl)
	photoRepo := portsmock.NewMockPhotoRepository(ctrl)
	cmds := commands.NewReorderCommands(catalogRepo, photoRepo)

	items := catalogFixture(3)
	catalogRepo.EXPECT().ListAll(gomock.Any()).Return(items, nil)

	result, err := cmds.MoveItem(context.Background(), uuid.New(), items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, result.Applied)
}

func TestReorderCommands_MoveItem_ReportsPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := portsmock.NewMockCatalogRepository(ctrl)
	photoRepo := portsmock.NewMockPhotoRepository(ctrl)
	cmds := commands.NewReorderCommands(catalogRepo, photoRepo)

	items := catalogFixture(3)
	catalogRepo.EXPECT().ListAll(gomock.Any()).Return(items, nil)

	// last item to the front shifts every row; one write fails mid-way
	catalogRepo.EXPECT().UpdateOrder(gomock.Any(), items[2].ID, 1).Return(nil)
	catalogRepo.EXPECT().UpdateOrder(gomock.Any(), items[0].ID, 2).Return(assert.AnError)
	catalogRepo.EXPECT().UpdateOrder(gomock.Any(), items[1].ID, 3).Return(nil)

	result, err := cmds.MoveItem(context.Background(), items[2].ID, items[0].ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPartialReorder)

	require.NotNil(t, result)
	assert.Len(t, result.Applied, 2)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, items[0].ID, result.Failed[0].ID)
	assert.Equal(t, 2, result.Failed[0].Order)
	assert.NotEmpty(t, result.Failed[0].Reason)
}

func TestReorderCommands_MovePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := portsmock.NewMockCatalogRepository(ctrl)
	photoRepo := portsmock.NewMockPhotoRepository(ctrl)
	cmds := commands.NewReorderCommands(catalogRepo, photoRepo)

	itemID := uuid.New()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	photos := []catalog.Photo{
		{ID: uuid.New(), ItemID: itemID, URL: "a.jpg", OrderIndex: 1, CreatedAt: base},
		{ID: uuid.New(), ItemID: itemID, URL: "b.jpg", OrderIndex: 2, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), ItemID: itemID, URL: "c.jpg", OrderIndex: 3, CreatedAt: base.Add(2 * time.Minute)},
	}
	photoRepo.EXPECT().ListByItem(gomock.Any(), itemID).Return(photos, nil)
	photoRepo.EXPECT().UpdateOrder(gomock.Any(), photos[2].ID, 2).Return(nil)
	photoRepo.EXPECT().UpdateOrder(gomock.Any(), photos[1].ID, 3).Return(nil)

	result, err := cmds.MovePhoto(context.Background(), itemID, photos[2].ID, photos[1].ID)
	require.NoError(t, err)
	assert.Len(t, result.Applied, 2)
}

func TestReorderCommands_MoveItem_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := portsmock.NewMockCatalogRepository(ctrl)
	photoRepo := portsmock.NewMockPhotoRepository(ctrl)
	cmds := commands.NewReorderCommands(catalogRepo, photoRepo)

	catalogRepo.EXPECT().ListAll(gomock.Any()).Return(nil, assert.AnError)

	result, err := cmds.MoveItem(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, commands.ErrCatalogUnavailable)
	assert.Nil(t, result)
}
