package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/taskmanager-api/internal/constants"
	apierrors "github.com/yukikurage/taskmanager-api/internal/errors"
	"github.com/yukikurage/taskmanager-api/internal/middleware"
)

// pathID returns the id parsed by middleware.RequireID.
// A negative id can match no row, so it is answered with 404 and the given message.
// It responds with 500 when the route was registered without that middleware.
func pathID(c *gin.Context, notFound string) (uint64, bool) {
	id, ok := middleware.GetID(c)
	if !ok {
		apierrors.InternalError(c, "Missing path id")
		return 0, false
	}
	if id < 0 {
		apierrors.NotFound(c, notFound)
		return 0, false
	}
	return uint64(id), true
}

// badBody answers a failed ShouldBindJSON. Validation failures list the
// offending fields and the rule each one broke.
func badBody(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		apierrors.BadRequest(c, constants.MsgInvalidRequestBody)
		return
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	apierrors.BadRequestWithDetails(c, constants.MsgInvalidRequestBody, details)
}

// internalError records err for the request log and hides it from the client
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	apierrors.InternalError(c, "")
}
