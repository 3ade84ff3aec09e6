package upstream

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from the HRMS API. It is surfaced inline to
// the operator and never treated as fatal: the modal that triggered the call
// stays open for a manual retry.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an *APIError if one is present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
