//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"castle-rentals/internal/handler/api"
	resdto "castle-rentals/internal/handler/dto/response"
	"castle-rentals/internal/handler/httperr"
	"castle-rentals/internal/usecase/queries"
	queriesmock "castle-rentals/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/catalog", s.handler.ListItems)
	s.router.GET("/catalog/:id", s.handler.GetItem)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func itemViewFixture(name string, orderIndex int) *queries.ItemView {
	two := int64(28000)
	return &queries.ItemView{
		ID:                uuid.New(),
		Name:              name,
		PriceOneDayCents:  16000,
		PriceTwoDaysCents: &two,
		OrderIndex:        orderIndex,
		CreatedAt:         time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Photos: []queries.PhotoView{
			{ID: uuid.New(), URL: name + "-1.jpg", OrderIndex: 1},
		},
	}
}

func (s *CatalogHandlerTestSuite) TestListItems() {
	s.Run("returns items in display order", func() {
		views := []*queries.ItemView{
			itemViewFixture("Knight Castle", 1),
			itemViewFixture("Princess Castle", 2),
		}
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(views, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/catalog", nil)
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)

		var items []resdto.ItemResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
		s.Require().Len(items, 2)
		s.Equal("Knight Castle", items[0].Name)
		s.Equal(int64(16000), items[0].PriceOneDayCents)
		s.Len(items[0].Photos, 1)
	})

	s.Run("read failure maps to 500", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/catalog", nil)
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestGetItem() {
	s.Run("returns one item", func() {
		view := itemViewFixture("Dragon Castle", 3)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/catalog/"+view.ID.String(), nil)
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)

		var item resdto.ItemResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &item))
		s.Equal(view.ID, item.ID)
		s.Equal("Dragon Castle", item.Name)
	})

	s.Run("unknown item maps to 404 with error envelope", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrItemNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/catalog/"+id.String(), nil)
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNotFound, w.Code)

		var resp httperr.Response
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("Item not found", resp.Error.Message)
	})

	s.Run("malformed id maps to 400", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/catalog/not-a-uuid", nil)
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
