//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// OperatorToken signs a short-lived HMAC token the way the external identity
// provider would for a back-office operator.
func OperatorToken(t *testing.T, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  "operator@example.com",
		"role": "operator",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}
