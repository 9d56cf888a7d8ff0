package api

import (
	"errors"
	"net/http"

	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/domain/quote"
	reqdto "castle-rentals/internal/handler/dto/request"
	resdto "castle-rentals/internal/handler/dto/response"
	"castle-rentals/internal/handler/httperr"
	"castle-rentals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
	}
}

// @Summary Get quote draft
// @Description Current wizard state with running estimate
// @Tags quote
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Router /quote [get]
func (h *QuoteHandler) GetDraft(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	h.respondDraft(c, http.StatusOK)
}

// @Summary Advance wizard
// @Description Move the draft to the next step
// @Tags quote
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Failure 409 {object} httperr.Response
// @Router /quote/next [post]
func (h *QuoteHandler) NextStep(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if err := h.quoteCommands.Next(sess); err != nil {
		httperr.AbortWithError(c, http.StatusConflict, err, "Already on the last step", nil)
		return
	}
	h.respondDraft(c, http.StatusOK)
}

// @Summary Rewind wizard
// @Description Move the draft to the previous step, keeping entered data
// @Tags quote
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Failure 409 {object} httperr.Response
// @Router /quote/back [post]
func (h *QuoteHandler) PreviousStep(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if err := h.quoteCommands.Back(sess); err != nil {
		httperr.AbortWithError(c, http.StatusConflict, err, "Already on the first step", nil)
		return
	}
	h.respondDraft(c, http.StatusOK)
}

// @Summary Set event details
// @Description Record event details and optionally the shared rental duration
// @Tags quote
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteEventRequest true "Event details"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /quote/event [put]
func (h *QuoteHandler) SetEvent(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req reqdto.QuoteEventRequest
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

	if err := h.quoteCommands.SetEvent(sess, req.ToDomain(), duration); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration is not valid for every selected item", nil)
		return
	}
	h.respondDraft(c, http.StatusOK)
}

// @Summary Set contact details
// @Description Record visitor contact details on the final step
// @Tags quote
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteContactRequest true "Contact details"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /quote/contact [put]
func (h *QuoteHandler) SetContact(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req reqdto.QuoteContactRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	h.quoteCommands.SetContact(sess, req.ToDomain())
	h.respondDraft(c, http.StatusOK)
}

// @Summary Update quote item
// @Description Toggle an item in the draft selection or override its duration
// @Tags quote
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param request body reqdto.QuoteItemRequest true "Selection toggle and duration override"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /quote/items/{itemId} [patch]
func (h *QuoteHandler) UpdateItem(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.QuoteItemRequest
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

	if req.Selected != nil {
		if *req.Selected {
			err = h.quoteCommands.Select(c.Request.Context(), sess, itemID)
		} else {
			err = h.quoteCommands.Deselect(sess, itemID)
		}
		if err != nil {
			abortQuoteError(c, err)
			return
		}
	}

	if duration != nil {
		if err := h.quoteCommands.SetEntryDuration(sess, itemID, *duration); err != nil {
			abortQuoteError(c, err)
			return
		}
	}

	h.respondDraft(c, http.StatusOK)
}

// @Summary Submit quote request
// @Description Freeze the draft into a summary and hand it to the notification relay
// @Tags quote
// @Produce json
// @Success 201 {object} resdto.QuoteSubmittedResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /quote/submit [post]
func (h *QuoteHandler) Submit(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	summary, err := h.quoteCommands.Submit(c.Request.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrNotOnContactStep):
			httperr.AbortWithError(c, http.StatusConflict, err, "Quote draft is not on the contact step", nil)
		case errors.Is(err, commands.ErrSubmissionFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Quote submission failed, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSummary(summary))
}

func (h *QuoteHandler) respondDraft(c *gin.Context, status int) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	view, err := h.quoteCommands.View(sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resdto.FromQuoteView(view))
}

func abortQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, quote.ErrEntryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item is not part of the quote draft", nil)
	case errors.Is(err, commands.ErrItemNotRentable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for rental", nil)
	case errors.Is(err, commands.ErrInvalidDuration), errors.Is(err, pricing.ErrNoTwoDayPrice):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration for this item", nil)
	case errors.Is(err, quote.ErrEntryInSelection):
		httperr.AbortWithError(c, http.StatusConflict, err, "Items from the cart are removed through the cart", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
