package utils

import (
	"github.com/felixge/httpsnoop"
	"net/http"
)

type ResponseStats struct {
	statusCode   *int
	BytesWritten int64
}

// GetStatusCode returns nil if nothing has been sent yet
func (s *ResponseStats) GetStatusCode() *int {
	return s.statusCode
}

// WrapResponseWriter records the status code and the body size of the response.
// The returned writer keeps the optional interfaces (Flusher, Hijacker, ...) of w
func WrapResponseWriter(w http.ResponseWriter) (http.ResponseWriter, *ResponseStats) {
	stats := &ResponseStats{}
	hooks := httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				if stats.statusCode == nil {
					stats.statusCode = &code
				}
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				if stats.statusCode == nil {
					stats.statusCode = ToPtr(http.StatusOK)
				}
				n, err := next(b)
				stats.BytesWritten += int64(n)
				return n, err
			}
		},
	}
	return httpsnoop.Wrap(w, hooks), stats
}
