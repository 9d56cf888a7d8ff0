package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"castle-rentals/internal/pkg/config"
	"castle-rentals/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware gates the operator surfaces. Tokens come from the external
// identity provider; this service only checks the signature and the role
// claim.
type AuthMiddleware struct {
	secret []byte
}

const ctxOperatorKey = "operator_subject"

var errUnexpectedSigningMethod = errs.New("unexpected token signing method")

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(cfg.JWT.Secret),
	}
}

func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		subject, err := m.validate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorKey, subject)
		c.Next()
	}
}

func (m *AuthMiddleware) validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errs.New("invalid token claims")
	}
	if role, _ := claims["role"].(string); role != "operator" && role != "admin" {
		return "", errs.New("operator role required")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", errs.Wrap(err, "token missing subject")
	}
	return subject, nil
}

func GetOperatorSubject(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}
	subject, ok := value.(string)
	return subject, ok
}
