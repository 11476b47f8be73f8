package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserUID = "firebase_uid"
)

// UserUID extracts the authenticated user's UID from the Gin context.
// This is set by FirebaseAuthMiddleware.
func UserUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserUID))
}
