package api

import (
	"errors"
	"net/http"

	reqdto "repair-storefront/internal/handler/dto/request"
	"repair-storefront/internal/handler/middleware"
	"repair-storefront/internal/pkg/errs"
	"repair-storefront/internal/usecase/commands"
	"repair-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
	quoteQueries  queries.QuoteQueries
	modalQueries  queries.ModalQueries
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands, quoteQueries queries.QuoteQueries, modalQueries queries.ModalQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
		quoteQueries:  quoteQueries,
		modalQueries:  modalQueries,
	}
}

// @Summary Current selection
// @Tags quote
// @Produce json
// @Success 200 {object} queries.SelectionView
// @Router /quote [get]
func (h *QuoteHandler) GetSelection(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, h.quoteQueries.Selection(sess))
}

// @Summary Toggle a repair service
// @Description Adds the service when absent, removes it when present
// @Tags quote
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleServiceRequest true "Toggle request"
// @Success 200 {object} queries.SelectionView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /quote/toggle [post]
func (h *QuoteHandler) ToggleService(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req reqdto.ToggleServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.quoteCommands.ToggleService(c.Request.Context(), sess, req.DeviceID, req.DeviceModel, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Repair service not found",
			})
		case errors.Is(err, errs.ErrCatalogDegraded):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Catalog temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, h.quoteQueries.Selection(sess))
}

// @Summary Clear the selection
// @Tags quote
// @Produce json
// @Success 200 {object} queries.SelectionView
// @Router /quote/clear [post]
func (h *QuoteHandler) ClearSelection(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	h.quoteCommands.ClearSelection(sess)
	c.JSON(http.StatusOK, h.quoteQueries.Selection(sess))
}

// @Summary Request a quote
// @Description Snapshots the selection and opens the booking modal, or the login modal when unauthenticated
// @Tags quote
// @Accept json
// @Produce json
// @Param request body reqdto.RequestQuoteRequest true "Quote request"
// @Success 200 {object} queries.ModalView
// @Failure 400 {object} map[string]string
// @Router /quote/request [post]
func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req reqdto.RequestQuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, err := h.quoteCommands.RequestQuote(sess, req.DeviceModel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.modalQueries.Active(sess))
}
