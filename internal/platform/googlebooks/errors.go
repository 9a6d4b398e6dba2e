package googlebooks

import (
	"fmt"
	"net/http"
)

// APIError is the single failure kind of the client: a transport failure,
// a non-2xx status or a payload that could not be decoded.
type APIError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("googlebooks %s: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("googlebooks %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("googlebooks %s: failed", e.Op)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// NotFound reports whether the API answered 404.
func (e *APIError) NotFound() bool { return e.StatusCode == http.StatusNotFound }
