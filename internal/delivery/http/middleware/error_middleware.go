// Package middleware contains the echo error handler for the HTTP delivery.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/delivery/http/response"
	domainerrors "userauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Domain errors choose their own status and body key; anything unrecognised is a 500
// carrying the raw error message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		m.write(c, response.Error(c, appErr.HTTPCode(), appErr.ResponseKey(), appErr.ErrorCode(), appErr.Message(), appErr.Details()))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.write(c, response.Error(c, httpErr.Code, domainerrors.KeyError, "", httpErrorMessage(httpErr), ""))

		return
	}

	m.log(c).Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.write(c, response.Error(c, http.StatusInternalServerError, domainerrors.KeyError, "", err.Error(), ""))
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.log(c).Error("Failed to write error response", slog.Any("error", err))
	}
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	if httpErr.Message == nil {
		return http.StatusText(httpErr.Code)
	}

	return fmt.Sprint(httpErr.Message)
}
