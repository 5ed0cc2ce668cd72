package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/palloncino/storage-server-app-01/internal/auth/domain"
	"github.com/palloncino/storage-server-app-01/internal/auth/usecase"
	"github.com/palloncino/storage-server-app-01/pkg/apperror"
	"github.com/palloncino/storage-server-app-01/pkg/logger"
)

const userContextKey = "user"

// AuthMiddleware gates protected routes. It extracts the bearer token,
// verifies it, resolves the subject against the store, and attaches the
// resolved user to the request context. Every failure branch answers 403;
// the distinct reason only shows up in the log.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No token provided"})
			return
		}

		user, err := authUsecase.VerifyToken(parts[1])
		if err != nil {
			appErr := apperror.From(err, "Failed to authenticate token")
			message := "Failed to authenticate token"
			if appErr.Type == apperror.NotFound {
				message = "User not found"
			}
			logger.Log.WithField("reason", appErr.Error()).Warnf("Rejected %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": message})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity the middleware attached, or nil on
// unprotected routes.
func CurrentUser(c *gin.Context) *domain.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}
