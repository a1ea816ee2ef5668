package reservation

import "fmt"

const (
	CodeInvalidInput = "invalidInput"
	CodeConflict     = "conflict"
	CodeUpstream     = "upstreamError"
)

// ServiceError carries a code the HTTP layer maps to a status, and a
// message safe to show to clients.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidInputError(msg string) error {
	return &ServiceError{Code: CodeInvalidInput, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

// NewUpstreamError deliberately carries a generic message; the underlying
// store error is logged at the call site, never sent to clients.
func NewUpstreamError() error {
	return &ServiceError{Code: CodeUpstream, Message: "service temporarily unavailable, please try again later"}
}
