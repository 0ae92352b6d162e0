// Package response contains response utility functions and types
package response

import (
	"net/http"

	"github.com/electroway/electrowayapi/pkg/utils/apperr"
	"github.com/labstack/echo/v4"
)

// Response represents the standard API response structure
type Response struct {
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	ErrorType string      `json:"error_type,omitempty"`
	Message   string      `json:"message,omitempty"`
}

// SuccessResponse sends a successful JSON response
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// CreatedResponse sends a successful JSON response with a 201 status
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Status: "success",
		Data:   data,
	})
}

// ErrorResponse sends an error JSON response
func ErrorResponse(c echo.Context, httpStatus int, errorType, message string) error {
	return c.JSON(httpStatus, Response{
		Status:    "error",
		ErrorType: errorType,
		Message:   message,
	})
}

// AppErrorResponse maps a service layer error to an error JSON response
// using the apperr taxonomy
func AppErrorResponse(c echo.Context, err error) error {
	httpStatus, errorType := statusForKind(apperr.KindOf(err))
	return ErrorResponse(c, httpStatus, errorType, apperr.MessageOf(err))
}

func statusForKind(kind apperr.Kind) (int, string) {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest, "InputException"
	case apperr.KindAuth:
		return http.StatusUnauthorized, "AuthenticationException"
	case apperr.KindConflict:
		return http.StatusConflict, "ConflictException"
	case apperr.KindNotFound:
		return http.StatusNotFound, "NotFoundException"
	default:
		return http.StatusInternalServerError, "ServerException"
	}
}
