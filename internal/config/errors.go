package config

import "github.com/ayoisaiah/avocado/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnmarshalConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn, or error)",
	}

	errSameFiles = &apperr.Error{
		Message: "the current session file and the history file must differ (both are %s)",
	}
)
