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

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Login
// @Description Marks the session authenticated with the caller's contact details
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.MeResponse
// @Failure 400 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.authCommands.Login(sess, req.Name, req.Mobile); err != nil {
		if errors.Is(err, errs.ErrContactInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Name and mobile number are required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	authenticated, profile := sess.IsAuthenticated()
	c.JSON(http.StatusOK, resdto.FromAuthState(authenticated, profile))
}

// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	h.authCommands.Logout(sess)

	authenticated, profile := sess.IsAuthenticated()
	c.JSON(http.StatusOK, resdto.FromAuthState(authenticated, profile))
}

// @Summary Current auth state
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	authenticated, profile := sess.IsAuthenticated()
	c.JSON(http.StatusOK, resdto.FromAuthState(authenticated, profile))
}
