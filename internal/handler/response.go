package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

// Message is a plain acknowledgment payload.
type Message struct {
	Message string `json:"message"`
}

// Abort records err for middleware.ErrorHandler and stops the chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// BindJSON decodes the body into obj, aborting with a validation error on
// failure.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		Abort(c, apperrors.Validation(err))
		return false
	}
	return true
}

// BindQuery decodes the query string into obj, aborting with a validation
// error on failure.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		Abort(c, apperrors.Validation(err))
		return false
	}
	return true
}
