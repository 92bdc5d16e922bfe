package ioweb

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/pkg/errcode"
)

// BadRequestError is returned when a query parameter cannot be parsed.
func BadRequestError(param, value string, err error) error {
	msg := "Invalid value <em>%s</em> of parameter <em>%s</em>"
	vars := []any{value, param}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BadRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s=%q: %w", fn.Name(), param, value, err),
	}
}

// ServerError is returned when the HTTP server cannot start or stop.
func ServerError(addr string, err error) error {
	msg := "HTTP server at <em>%s</em> failed"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ServerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

// errorBody is the JSON body of every failed response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusOf maps error codes to HTTP statuses.
func statusOf(code gn.ErrorCode) int {
	switch code {
	case errcode.NotFoundError:
		return http.StatusNotFound
	case errcode.BadRequestError:
		return http.StatusBadRequest
	case errcode.MissingStatError, errcode.MalformedChainError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes err as a JSON error body and stops the handler
// chain.
func abortWithError(c *gin.Context, err error) {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
			Error: "internal error",
			Code:  errcode.Name(errcode.UnknownError),
		})
		return
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(statusOf(gnErr.Code), errorBody{
		Error: plainMessage(gnErr),
		Code:  errcode.Name(gnErr.Code),
	})
}

// plainMessage renders a user message without markup.
func plainMessage(gnErr *gn.Error) string {
	msg := fmt.Sprintf(gnErr.Msg, gnErr.Vars...)
	return strings.NewReplacer("<em>", "", "</em>", "").Replace(msg)
}
