package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const minSecretLength = 32

var ErrInvalidToken = errors.New("invalid token")

// Principal identifies the authenticated caller of a request.
type Principal struct {
	Subject string
	OrgID   string
	Roles   []string
}

// PrincipalFromContext returns the principal stored by the middleware, if any.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

const principalKey = "auth.principal"

// Verifier validates bearer tokens signed with a shared HS256 secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("token signing secret must be at least %d bytes", minSecretLength)
	}
	return &Verifier{secret: []byte(secret)}, nil
}

type claims struct {
	OrgID string   `json:"orgId,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Verify parses and validates a compact JWT and returns the caller principal.
func (v *Verifier) Verify(token string) (Principal, error) {
	var cl claims

	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Principal{}, ErrInvalidToken
	}

	return Principal{Subject: cl.Subject, OrgID: cl.OrgID, Roles: cl.Roles}, nil
}

// Middleware rejects requests without a valid bearer token.
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		principal, err := v.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}
