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

type ModalHandler struct {
	modalCommands commands.ModalCommands
	modalQueries  queries.ModalQueries
}

func NewModalHandler(modalCommands commands.ModalCommands, modalQueries queries.ModalQueries) *ModalHandler {
	return &ModalHandler{
		modalCommands: modalCommands,
		modalQueries:  modalQueries,
	}
}

// @Summary Active modal
// @Description Resolves the session's modal; unregistered kinds render as "none"
// @Tags modal
// @Produce json
// @Success 200 {object} queries.ModalView
// @Router /modal [get]
func (h *ModalHandler) GetActive(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, h.modalQueries.Active(sess))
}

// @Summary Open a modal
// @Description Replaces any modal already open; payloads are not merged
// @Tags modal
// @Accept json
// @Produce json
// @Param request body reqdto.OpenModalRequest true "Open request"
// @Success 200 {object} queries.ModalView
// @Failure 400 {object} map[string]string
// @Router /modal/open [post]
func (h *ModalHandler) Open(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req reqdto.OpenModalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, err := h.modalCommands.Open(sess, req.Kind, req.Payload); err != nil {
		if errors.Is(err, errs.ErrModalKindUnknown) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid modal kind",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, h.modalQueries.Active(sess))
}

// @Summary Close the modal
// @Description Idempotent; closing a closed modal is a no-op
// @Tags modal
// @Produce json
// @Success 200 {object} queries.ModalView
// @Router /modal/close [post]
func (h *ModalHandler) Close(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	h.modalCommands.Close(sess)
	c.JSON(http.StatusOK, h.modalQueries.Active(sess))
}
