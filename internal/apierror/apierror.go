package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/contenthub-server/internal/models"
	"github.com/contenthub/contenthub-server/pkg/logger"
)

// BadRequest aborts with 400 and a human-readable message.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msg})
}

// NotFound aborts with 404 and a human-readable message.
func NotFound(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": msg})
}

// Internal logs err and aborts with a generic 500 message.
func Internal(c *gin.Context, err error, msg string) {
	logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msg})
}

// Respond maps the domain sentinel errors onto the status taxonomy.
// notFound is the message used for models.ErrNotFound; internal for anything unrecognised.
func Respond(c *gin.Context, err error, notFound, internal string) {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		BadRequest(c, "Invalid id")
	case errors.Is(err, models.ErrNotFound):
		NotFound(c, notFound)
	case errors.Is(err, models.ErrDuplicate):
		BadRequest(c, "Item already exists")
	default:
		Internal(c, err, internal)
	}
}
