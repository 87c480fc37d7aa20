package session

import "github.com/ayoisaiah/avocado/internal/apperr"

var (
	ErrMalformedLine = &apperr.Error{
		Message: "malformed session line %q",
	}

	ErrMissingStart = &apperr.Error{
		Message: "session has no start time",
	}

	ErrNegativeDuration = &apperr.Error{
		Message: "session stop time (%s) is earlier than its start time (%s)",
	}

	ErrInvalidDescription = &apperr.Error{
		Message: "invalid session description %q: %s",
	}
)
