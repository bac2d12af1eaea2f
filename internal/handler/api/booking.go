package api

import (
	"errors"
	"net/http"

	reqdto "repair-storefront/internal/handler/dto/request"
	resdto "repair-storefront/internal/handler/dto/response"
	"repair-storefront/internal/handler/middleware"
	"repair-storefront/internal/pkg/errs"
	"repair-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Submit a booking inquiry
// @Description Combines contact details with the open booking modal's quote and posts it to the inquiry upstream
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Contact details"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /booking [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.SubmitBooking(c.Request.Context(), sess, req.Name, req.Mobile)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrContactInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Name and mobile number are required",
			})
		case errors.Is(err, errs.ErrModalNotOpen):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No booking in progress",
			})
		case errors.Is(err, errs.ErrBookingInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A submission is already in progress",
			})
		case errors.Is(err, errs.ErrBookingRejected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Something went wrong. Please try again.",
			})
		case errors.Is(err, errs.ErrInquiryUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to reach our team. Please retry.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmitBookingResult(result))
}
