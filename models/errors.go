package models

// Error taxonomy surfaced to the HTTP layer. The helper maps each type to a
// status code; anything else becomes a generic failure response.

type ErrorPermissionDenied struct{ Message string }

func (e ErrorPermissionDenied) Error() string {
	if e.Message == "" {
		return "permission denied"
	}
	return e.Message
}

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

type ErrorValidationFailed struct{ Message string }

func (e ErrorValidationFailed) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

type ErrorConflictFailed struct{ Message string }

func (e ErrorConflictFailed) Error() string {
	if e.Message == "" {
		return "conflict"
	}
	return e.Message
}
