package middleware

import (
	"net/http"

	"castle-rentals/internal/infra/session"
	"castle-rentals/internal/pkg/config"
	"castle-rentals/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware resolves the visitor session from the cookie, creating
// one (and setting the cookie) for first-time visitors. Handlers read the
// session from the gin context and hold its lock while mutating it.
type SessionMiddleware struct {
	registry *session.Registry
	cfg      config.SessionConfig
}

const ctxSessionKey = "visitor_session"

func NewSessionMiddleware(registry *session.Registry, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		registry: registry,
		cfg:      cfg.Session,
	}
}

func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.Nil
		if raw, err := c.Cookie(m.cfg.CookieName); err == nil {
			if parsed, parseErr := uuid.Parse(raw); parseErr == nil {
				id = parsed
			}
		}

		sess := m.registry.Resolve(id)
		if sess.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(m.cfg.CookieName, sess.ID.String(), int(m.cfg.TTL.Seconds()), "/", "", m.cfg.Secure, true)
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

func GetSession(c *gin.Context) (*shared.Session, bool) {
	value, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*shared.Session)
	return sess, ok
}
