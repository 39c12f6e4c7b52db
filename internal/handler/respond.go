// Package handler implements the HTTP boundary. Every response uses the
// uniform envelope: {"data": ..., "message": ...} on success or
// {"error": {"code", "message", "details"}} on failure, never both, so
// clients branch on the presence of "error" alone.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/evently/event-booking/internal/model"
	"github.com/evently/event-booking/internal/service"
)

// userIDKey is the context key the identity middleware stores the resolved
// caller identity under.
const userIDKey = "user_id"

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"data": data})
}

func respondDataMessage(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, echo.Map{"data": data, "message": message})
}

func respondError(c echo.Context, status int, apiErr model.APIError) error {
	return c.JSON(status, echo.Map{"error": apiErr})
}

func respondNotFound(c echo.Context, code, message string) error {
	return respondError(c, http.StatusNotFound, model.APIError{Code: code, Message: message})
}

// respondInternal logs the underlying fault and answers with a generic
// message; internal detail never reaches the caller.
func respondInternal(c echo.Context, err error) error {
	if err != nil {
		c.Logger().Errorf("internal error: %v", err)
	}
	return respondError(c, http.StatusInternalServerError, model.APIError{
		Code:    model.CodeInternalError,
		Message: "Internal server error",
	})
}

// respondRejection translates an admission rejection into the envelope.
func respondRejection(c echo.Context, err error) error {
	var rej *service.Rejection
	if errors.As(err, &rej) {
		return respondError(c, rej.Status, model.APIError{
			Code:    rej.Code,
			Message: rej.Message,
			Details: rej.Details,
		})
	}
	return respondInternal(c, err)
}

// currentUser returns the caller identity resolved by the identity
// middleware, or the empty string when the middleware is not installed.
func currentUser(c echo.Context) string {
	if v, ok := c.Get(userIDKey).(string); ok {
		return v
	}
	return ""
}
