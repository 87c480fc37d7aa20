package timer

import "github.com/ayoisaiah/avocado/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file %s must be in mp3, ogg, flac, or wav format",
	}

	errPlaySound = &apperr.Error{
		Message: "unable to play sound %s",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to run session_cmd %q",
	}
)
