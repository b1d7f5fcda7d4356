package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/fitness-backend/pkg/response"
)

const (
	ContextUserID = "userID"

	MsgUnauthenticated = "Unauthenticated"
	MsgInvalidToken    = "InvalidToken"
)

type userIDKey struct{}

// TokenVerifier is satisfied by *helpers.TokenManager.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// BearerAuth guards protected routes. A missing, malformed or non-bearer
// Authorization header is 401; a token that fails verification is 400.
// On success the subject is stored under "userID" and on the request context.
func BearerAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, MsgUnauthenticated, nil)
			return
		}
		sub, err := tokens.Verify(token)
		if err != nil {
			response.Error(c, http.StatusBadRequest, MsgInvalidToken, nil)
			return
		}
		c.Set(ContextUserID, sub)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey{}, sub))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// UserID returns the subject attached by BearerAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// UserIDFromContext reads the subject from a request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}
