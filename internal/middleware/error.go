package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	TraceID string       `json:"trace_id,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// ErrorHandler renders the last error pushed with c.Error. Errors carrying a
// StatusCode choose the status; anything else is a 500 whose detail is only
// logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		traceID := c.GetString(ContextRequestID)
		lastErr := c.Errors.Last().Err

		status := http.StatusInternalServerError
		if sc, ok := lastErr.(interface{ StatusCode() int }); ok {
			status = sc.StatusCode()
		} else {
			var appErr *apperrors.AppError
			if errors.As(lastErr, &appErr) {
				status = appErr.StatusCode()
			}
		}

		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Err(lastErr).
			Str("trace_id", traceID).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		resp := ErrorResponse{
			Code:    status,
			Message: publicMessage(lastErr, status),
			TraceID: traceID,
		}
		var verrs validator.ValidationErrors
		if errors.As(lastErr, &verrs) {
			resp.Fields = fieldErrors(verrs)
		}
		c.JSON(status, resp)
	}
}

func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "internal server error"
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
