package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/avocado/internal/osutil"
	"github.com/ayoisaiah/avocado/internal/session"
)

// History is the append-only log of finished sessions. It is written one
// line at a time and never parsed back.
type History struct {
	path string
}

// NewHistory returns the history log stored at path.
func NewHistory(path string) *History {
	return &History{
		path: path,
	}
}

// Path returns the location of the history log.
func (h *History) Path() string {
	return h.path
}

// Record appends a finished session as "<start> <stop>".
func (h *History) Record(sess *session.Session) error {
	if !sess.Done() {
		return errRecordIncomplete.Fmt(sess.Start.Format(session.Layout))
	}

	err := os.MkdirAll(filepath.Dir(h.path), osutil.DirPermission)
	if err != nil {
		return errWriteFile.Fmt(h.path).Wrap(err)
	}

	f, err := os.OpenFile(
		h.path,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		osutil.FilePermission,
	)
	if err != nil {
		return errWriteFile.Fmt(h.path).Wrap(err)
	}

	line := sess.Start.Format(session.Layout) + " " + sess.Stop.Format(session.Layout) + lineSeparator

	if _, err = f.WriteString(line); err != nil {
		_ = f.Close()
		return errWriteFile.Fmt(h.path).Wrap(err)
	}

	return f.Close()
}

// Read returns the raw contents of the history log. A missing log is empty.
func (h *History) Read() (string, error) {
	b, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", errReadFile.Fmt(h.path).Wrap(err)
	}

	return string(b), nil
}
