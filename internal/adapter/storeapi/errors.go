package storeapi

import (
	"fmt"
	"net/http"
)

// StatusError reports a non-success answer from the store API.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store api %s: %d %s", e.Op, e.Code, http.StatusText(e.Code))
}

// ClientError reports whether the API rejected the request itself (4xx).
func (e *StatusError) ClientError() bool {
	return e.Code >= 400 && e.Code < 500
}
