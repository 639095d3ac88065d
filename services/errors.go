package services

// NotFoundError reports a referenced entity id that did not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// InvalidStateError reports an operation attempted against a work order in a
// state that does not allow it.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// ConflictError reports an operation that would duplicate an existing record.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
