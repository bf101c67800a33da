package http

import (
	"errors"
	"net/http"

	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorJSON renders a domain error as a JSON response with the status code
// matching its place in the error taxonomy. Business rejections keep their
// message so callers can render a precise reason; internal failures do not
// leak details.
func errorJSON(ctx echo.Context, err error) error {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// statusFromError maps the error taxonomy to HTTP status codes. Conflicts are
// reported as 409 so callers know the operation is safe to retry. An invalid
// state rejection means the entity is not eligible for the operation at all
// and is reported as 404, same as an absent entity.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrMissingAssignment):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrDuplicateReview):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
