package engine

import "github.com/ayoisaiah/avocado/internal/apperr"

var (
	ErrUnknownCommand = &apperr.Error{
		Message: "unknown command %q",
	}

	ErrNoActiveSession = &apperr.Error{
		Message: "no session is currently running",
	}

	ErrSessionRunning = &apperr.Error{
		Message: "a session is already running (%s left): stop it before starting another",
	}
)
