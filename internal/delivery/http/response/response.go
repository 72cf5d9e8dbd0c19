// Package response renders the JSON bodies returned by the HTTP delivery.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the success envelope: a human-readable message and, where relevant, the user.
type Body struct {
	Message string `json:"message"`
	User    any    `json:"user,omitempty"`
}

// Success writes statusCode with a {message, user} body.
func Success(c echo.Context, statusCode int, user any, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Body{
		Message: message,
		User:    user,
	})
}

// Error writes statusCode with the message under key, optionally with a machine code and details.
func Error(c echo.Context, statusCode int, key, code, message, details string) error {
	body := map[string]any{key: message}
	if code != "" {
		body["code"] = code
	}
	if details != "" {
		body["details"] = details
	}

	return c.JSON(statusCode, body)
}

// BindingError reports a request body that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "error", "INVALID_INPUT", message, "")
}
