package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InternalMessage replaces the text of every uncategorized failure.
const InternalMessage = "Internal server error"

// FieldError names one request field that failed binding and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

type Body struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// Response is the failure envelope: {"error":{"message":...,"details":[...]}}.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

func New(status int, msg string, details ...FieldError) Response {
	return Response{Status: status, Error: Body{Message: msg, Details: details}}
}

func Internal() Response {
	return New(http.StatusInternalServerError, InternalMessage)
}

// FieldErrors flattens validator failures. Other errors yield nil.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// AbortWithError writes resp and keeps err on the context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, details []FieldError) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg, details...)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
