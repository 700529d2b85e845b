package appointment

import "github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"

// RejectedError is a booking refusal. Error() is the message shown to the
// client; the business code stays reachable through errors.As.
type RejectedError struct {
	Code    string
	Message string
	Err     error
}

func Reject(code, message string) *RejectedError {
	return &RejectedError{Code: code, Message: message}
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Message
}

func (e *RejectedError) Unwrap() []error {
	errs := []error{httperr.ErrBusiness(e.Code)}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
