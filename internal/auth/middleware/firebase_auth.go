package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

const ctxUserUID = "firebase_uid"

// FirebaseAuthMiddleware validates Firebase ID tokens and stores the user's
// UID on the context. When no auth client is configured (local development),
// identity falls back to the X-User-Id header.
func FirebaseAuthMiddleware(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authClient == nil {
			uid := strings.TrimSpace(c.GetHeader("X-User-Id"))
			if uid == "" {
				uid = "demo-user"
			}
			c.Set(ctxUserUID, uid)
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		decodedToken, err := authClient.VerifyIDToken(context.Background(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ctxUserUID, decodedToken.UID)

		if email, ok := decodedToken.Claims["email"].(string); ok {
			c.Set("email", email)
		}

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
