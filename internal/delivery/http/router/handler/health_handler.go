package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// rootMessage is what load balancers and the frontend probe for on GET /.
const rootMessage = "Server is running!"

// Root answers the liveness probe on "/".
func Root(c echo.Context) error {
	return c.String(http.StatusOK, rootMessage)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
