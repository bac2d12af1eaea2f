package middleware

import (
	"log/slog"
	"net/http"

	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/infra/sessionstore"
	"repair-storefront/internal/pkg/config"
	"repair-storefront/internal/pkg/cookie"
	"repair-storefront/internal/pkg/sessiontoken"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "storefront_session"

// SessionMiddleware binds every request to a server-side session. A valid
// cookie resumes the existing session; anything else (no cookie, bad token,
// expired session) silently mints a fresh one, the same way a new browser tab
// starts with an empty cart.
type SessionMiddleware struct {
	store  *sessionstore.Store
	tokens *sessiontoken.Service
	cfg    config.SessionConfig
	logger *slog.Logger
}

func NewSessionMiddleware(store *sessionstore.Store, tokens *sessiontoken.Service, cfg config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store:  store,
		tokens: tokens,
		cfg:    cfg.Session,
		logger: logger,
	}
}

func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := m.resume(c); sess != nil {
			c.Set(sessionContextKey, sess)
			c.Next()
			return
		}

		sess := m.store.Create()
		token, err := m.tokens.Mint(sess.ID())
		if err != nil {
			m.store.Delete(sess.ID())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}

		cookie.SetSessionCookie(c, m.cfg.Cookie, token, m.cfg.TTL)
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func (m *SessionMiddleware) resume(c *gin.Context) *session.Session {
	token := cookie.GetSessionToken(c)
	if token == "" {
		return nil
	}

	id, err := m.tokens.Verify(token)
	if err != nil {
		m.logger.Debug("session token rejected", "error", err)
		return nil
	}

	sess, err := m.store.Get(id)
	if err != nil {
		return nil
	}
	return sess
}

// CurrentSession returns the session bound by EnsureSession, or nil on routes
// that skip the middleware.
func CurrentSession(c *gin.Context) *session.Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// SetSessionForTest injects a session directly, bypassing cookies.
func SetSessionForTest(c *gin.Context, sess *session.Session) {
	c.Set(sessionContextKey, sess)
}
