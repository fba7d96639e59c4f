// Package apierror defines the error taxonomy shared by the REST handlers:
// validation failures surface as 400 with a machine code and human message,
// authorization denials as an opaque 403, and persistence failures as 500
// with the store's message passed through.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStore(err error) *StoreError {
	return &StoreError{Err: err}
}

// Write maps an error to its transport shape. Handlers call this instead of
// deciding status codes themselves.
func Write(c *gin.Context, err error) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"code": validation.Code, "message": validation.Message})
		return
	}

	var store *StoreError
	if errors.As(err, &store) {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "store_error", "message": store.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "message": err.Error()})
}

// WriteForbidden reports an authorization denial without leaking why the
// predicate failed.
func WriteForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": "rest_forbidden"})
}
