package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"gig-hire/internal/gigerrors"
	"gig-hire/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Specific errors are matched before the category they wrap.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, gigerrors.ErrGigNotFound):
		return http.StatusNotFound, "gig not found"
	case errors.Is(err, gigerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, gigerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, gigerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, gigerrors.ErrNotGigOwner):
		return http.StatusForbidden, "only the gig owner can do this"
	case errors.Is(err, gigerrors.ErrUnauthorized):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, gigerrors.ErrGigAssigned):
		return http.StatusConflict, "gig already assigned"
	case errors.Is(err, gigerrors.ErrGigClosed):
		return http.StatusConflict, "gig is not open for bidding"
	case errors.Is(err, gigerrors.ErrDuplicateBid):
		return http.StatusConflict, "you have already bid on this gig"
	case errors.Is(err, gigerrors.ErrTxConflict):
		return http.StatusConflict, "concurrent update, retry the request"
	case errors.Is(err, gigerrors.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, gigerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, gigerrors.ErrInvalidGig):
		return http.StatusBadRequest, "invalid gig details"
	case errors.Is(err, gigerrors.ErrValidation):
		return http.StatusBadRequest, "validation error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error and logs it at a level matching its class
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
