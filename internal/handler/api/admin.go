package api

import (
	"errors"
	"net/http"

	reqdto "castle-rentals/internal/handler/dto/request"
	resdto "castle-rentals/internal/handler/dto/response"
	"castle-rentals/internal/handler/httperr"
	"castle-rentals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	reorderCommands commands.ReorderCommands
}

func NewAdminHandler(reorderCommands commands.ReorderCommands) *AdminHandler {
	return &AdminHandler{
		reorderCommands: reorderCommands,
	}
}

// @Summary Reorder catalog items
// @Description Move an item to the position currently held by the target item
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.ReorderRequest true "Source and target items"
// @Success 200 {object} resdto.ReorderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Security BearerAuth
// @Router /admin/catalog/reorder [post]
func (h *AdminHandler) ReorderItems(c *gin.Context) {
	var req reqdto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.reorderCommands.MoveItem(c.Request.Context(), req.SourceID, req.TargetID)
	h.respondReorder(c, result, err)
}

// @Summary Reorder item photos
// @Description Move a photo of an item to the position currently held by the target photo
// @Tags admin
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param request body reqdto.ReorderRequest true "Source and target photos"
// @Success 200 {object} resdto.ReorderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Security BearerAuth
// @Router /admin/catalog/{itemId}/photos/reorder [post]
func (h *AdminHandler) ReorderPhotos(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.reorderCommands.MovePhoto(c.Request.Context(), itemID, req.SourceID, req.TargetID)
	h.respondReorder(c, result, err)
}

func (h *AdminHandler) respondReorder(c *gin.Context, result *commands.ReorderResult, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resdto.FromReorderResult(result))
	case errors.Is(err, commands.ErrPartialReorder):
		// report exactly what landed so the client can re-render
		httperr.AbortWithError(c, http.StatusConflict, err, "Reorder applied partially", resdto.FromReorderResult(result))
	case errors.Is(err, commands.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Catalog is temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
