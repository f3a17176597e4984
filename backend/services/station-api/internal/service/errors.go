package service

// ValidationError marks malformed or missing input the caller can fix.
// Handlers map it to HTTP 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError marks a duplicate unique key. The public station/user
// surface reports it as HTTP 400 to preserve the original contract.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// NotFoundError marks a missing record. Handlers map it to HTTP 404.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }
