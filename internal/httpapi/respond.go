package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type apiEnvelope struct {
	Status  string            `json:"status"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, apiEnvelope{
		Status: "ok",
		Data:   data,
	})
}

func fail(c echo.Context, status int, message string, details map[string]string) error {
	return failWithCode(c, status, "", message, details)
}

func failWithCode(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, apiEnvelope{
		Status:  "error",
		Code:    code,
		Message: message,
		Errors:  details,
	})
}

func failValidation(c echo.Context, details map[string]string) error {
	return fail(c, http.StatusBadRequest, "Validation failed", details)
}

func failNotFound(c echo.Context, message string) error {
	return fail(c, http.StatusNotFound, message, nil)
}

func internalError(c echo.Context, message string) error {
	return fail(c, http.StatusInternalServerError, message, nil)
}
