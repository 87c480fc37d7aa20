package store

import "github.com/ayoisaiah/avocado/internal/apperr"

var (
	ErrEmpty = &apperr.Error{
		Message: "no sessions recorded in %s",
	}

	errRecordIncomplete = &apperr.Error{
		Message: "only finished sessions can be added to the history (started %s)",
	}

	errReadFile = &apperr.Error{
		Message: "reading %s failed",
	}

	errWriteFile = &apperr.Error{
		Message: "writing %s failed",
	}

	errCorruptLine = &apperr.Error{
		Message: "%s, line %d",
	}
)
