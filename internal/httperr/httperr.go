package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func BadGateway(c *gin.Context, code, message string) {
	Write(c, http.StatusBadGateway, code, message)
}

// FromError maps the core error taxonomy onto HTTP responses.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	switch {
	case IsValidation(err):
		BadRequest(c, "validation_failed", err.Error())
	case IsInvalidLocalTime(err):
		BadRequest(c, "invalid_local_time", err.Error())
	case IsRemote(err):
		BadGateway(c, "remote_request_failed", err.Error())
	case errors.Is(err, ErrReportUnavailable):
		BadGateway(c, "report_unavailable", err.Error())
	case errors.As(err, &be):
		BadRequest(c, be.Code, be.Code)
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}
