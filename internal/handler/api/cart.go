package api

import (
	"errors"
	"net/http"

	reqdto "castle-rentals/internal/handler/dto/request"
	resdto "castle-rentals/internal/handler/dto/response"
	"castle-rentals/internal/handler/httperr"
	"castle-rentals/internal/handler/middleware"
	"castle-rentals/internal/pkg/errs"
	"castle-rentals/internal/usecase/commands"
	"castle-rentals/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errSessionMissing = errs.New("visitor session missing from context")
	errEmptyLineEdit  = errs.New("line edit carries neither quantity nor duration")
)

type CartHandler struct {
	selectionCommands commands.SelectionCommands
}

func NewCartHandler(selectionCommands commands.SelectionCommands) *CartHandler {
	return &CartHandler{
		selectionCommands: selectionCommands,
	}
}

// @Summary Get cart
// @Description Current visitor selection with totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	view, err := h.selectionCommands.View(sess.Store)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a rentable item to the selection, merging onto an existing (item, duration) line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item and duration"
// @Success 201 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	duration, err := req.ParseDuration()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration", nil)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if err := h.selectionCommands.Add(c.Request.Context(), sess.Store, req.ItemID, duration); err != nil {
		abortSelectionError(c, err)
		return
	}

	view, err := h.selectionCommands.View(sess.Store)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCartView(view))
}

// @Summary Update cart line
// @Description Change quantity and/or duration of a selected item; quantity 0 removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param request body reqdto.UpdateCartLineRequest true "Line changes"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{itemId} [patch]
func (h *CartHandler) UpdateLine(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.UpdateCartLineRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyLineEdit, "Invalid request format", nil)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if req.Duration != nil {
		duration, parseErr := req.ParseDuration()
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid duration", nil)
			return
		}
		if err := h.selectionCommands.SetDuration(sess.Store, itemID, duration); err != nil {
			abortSelectionError(c, err)
			return
		}
	}

	if req.Quantity != nil {
		if err := h.selectionCommands.SetQuantity(sess.Store, itemID, *req.Quantity); err != nil {
			abortSelectionError(c, err)
			return
		}
	}

	view, err := h.selectionCommands.View(sess.Store)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart item
// @Description Remove every line of the item, regardless of duration
// @Tags cart
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if err := h.selectionCommands.Remove(sess.Store, itemID); err != nil {
		abortSelectionError(c, err)
		return
	}

	view, err := h.selectionCommands.View(sess.Store)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Description Empty the current selection
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	h.selectionCommands.Clear(sess.Store)
	c.Status(http.StatusNoContent)
}

func currentSession(c *gin.Context) (*shared.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSessionMissing, "Internal server error", nil)
		return nil, false
	}
	return sess, true
}

func abortSelectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, commands.ErrLineNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item is not in the cart", nil)
	case errors.Is(err, commands.ErrItemNotRentable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for rental", nil)
	case errors.Is(err, commands.ErrInvalidDuration):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration for this item", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
