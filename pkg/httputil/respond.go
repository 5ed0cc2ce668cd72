package httputil

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/palloncino/storage-server-app-01/pkg/apperror"
	"github.com/palloncino/storage-server-app-01/pkg/logger"
)

// RespondError renders the public message for an application error and logs
// the underlying cause. Stack details never reach the response body.
func RespondError(c *gin.Context, err error, fallback string) {
	appErr := apperror.From(err, fallback)
	logger.Log.WithError(appErr).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
	c.JSON(appErr.StatusCode(), gin.H{"message": appErr.Message})
}

// JoinIDs renders an id list the way response messages quote it: "1, 2, 3".
func JoinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
