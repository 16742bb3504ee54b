package common

import (
	"errors"
	"github.com/mattbratos/warhol/www/internal/server/context"
	"net/http"
)

type HttpError struct {
	Status  int
	Message string
}

var _ error = &HttpError{}

func (e *HttpError) Error() string {
	return e.Message
}

func NewHttpError(status int, message string) *HttpError {
	return &HttpError{
		Status:  status,
		Message: message,
	}
}

// WriteError responds with the status of err if it is an HttpError, or 500 otherwise
func WriteError(w http.ResponseWriter, err error) {
	var httpError *HttpError
	if errors.As(err, &httpError) {
		http.Error(w, httpError.Message, httpError.Status)
	} else {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func CheckReadMethod(r *http.Request) error {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return NewHttpError(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}
	return nil
}

// NotFoundFunc writes the not found response of the site
type NotFoundFunc func(ctx *context.RequestContext, w http.ResponseWriter, r *http.Request)
