package apperr

// ValidationError rejects a malformed request before any statement is evaluated.
// Field is the request field at fault, empty when the body itself is unreadable.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewRequiredField reports a missing or blank request field.
func NewRequiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}
