package httperr

import (
	"net/http"
	"strconv"

	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/response"
	"eventpro/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	kind   error
	status int
	code   string
}

var table = []mapping{
	{errs.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{errs.ErrStateConflict, http.StatusBadRequest, "ALREADY_PROCESSED"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
	{errs.ErrConflict, http.StatusConflict, "CONFLICT"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrNotificationDelivery, http.StatusInternalServerError, "NOTIFICATION_FAILED"},
}

// Status resolves the HTTP status and error code for err.
func Status(err error) (int, string) {
	for _, m := range table {
		if errs.Is(err, m.kind) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// Abort records err on the context for the logging middleware and writes the
// error body. Known kinds expose the sentinel message; anything else is
// replaced by fallback so storage details never reach the client.
func Abort(c *gin.Context, err error, fallback string) {
	status, code := Status(err)

	_ = c.Error(err)

	msg := fallback
	if status < http.StatusInternalServerError || errs.Is(err, errs.ErrNotificationDelivery) {
		msg = publicMessage(err)
	}

	var fields validator.FieldErrors
	if errs.As(err, &fields) {
		response.ErrorWithDetails(c, status, code, msg, map[string]string(fields))
		c.Abort()
		return
	}
	response.Abort(c, status, code, msg)
}

// AbortValidation answers 400 with the field -> rule map produced by the validator.
func AbortValidation(c *gin.Context, msg string, fields map[string]string) {
	response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", msg, fields)
	c.Abort()
}

// publicMessage is the innermost message: for marked sentinels that is the
// sentinel text without the wrapping context added on the way up.
func publicMessage(err error) string {
	return errs.Root(err).Error()
}

// ParamID parses a positive integer path parameter. On failure it writes a
// 400 and returns false.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		AbortValidation(c, "invalid "+name, map[string]string{name: "positive integer"})
		return 0, false
	}
	return id, true
}
