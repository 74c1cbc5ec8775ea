package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmanager-api/internal/constants"
	apierrors "github.com/yukikurage/taskmanager-api/internal/errors"
)

// RequireID parses an integer path parameter and stores it in the context.
// Requests whose id is not an integer never reach the handler; zero and
// negative ids do, and are left for the handler to report as missing.
func RequireID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid "+param)
			return
		}

		c.Set(constants.ContextKeyID, id)
		c.Next()
	}
}

// GetID retrieves the id stored by RequireID
func GetID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(constants.ContextKeyID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
