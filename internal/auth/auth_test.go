package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, secret string, cl claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewVerifierRejectsShortSecret(t *testing.T) {
	_, err := NewVerifier("too-short")
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	verifier, err := NewVerifier(testSecret)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, claims{
			OrgID: "org-1",
			Roles: []string{"admin"},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		principal, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "user-1", principal.Subject)
		require.Equal(t, "org-1", principal.OrgID)
		require.Equal(t, []string{"admin"}, principal.Roles)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "ffffffffffffffffffffffffffffffff", claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		})

		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verifier, err := NewVerifier(testSecret)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", verifier.Middleware(), func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"subject": principal.Subject})
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"subject":"user-1"}`, rec.Body.String())
	})
}
