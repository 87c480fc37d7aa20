// Package store reads and writes the current session file and appends
// finished sessions to the history log
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/avocado/internal/osutil"
	"github.com/ayoisaiah/avocado/internal/session"
)

const lineSeparator = "\n"

// Store is the current session file. Each line holds one encoded session in
// chronological order, and only the last one may still be running.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The file is not touched
// until a method is called.
func New(path string) *Store {
	return &Store{
		path: path,
	}
}

// Path returns the location of the current session file.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates the current session file if it does not exist yet.
func (s *Store) Ensure() error {
	err := os.MkdirAll(filepath.Dir(s.path), osutil.DirPermission)
	if err != nil {
		return errWriteFile.Fmt(s.path).Wrap(err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, osutil.FilePermission)
	if err != nil {
		return errWriteFile.Fmt(s.path).Wrap(err)
	}

	return f.Close()
}

// record is a non-blank line of the current session file and its line
// number in the file.
type record struct {
	text string
	num  int
}

// Load returns the non-blank lines of the current session file. A missing
// file has no lines.
func (s *Store) Load() ([]string, error) {
	records, err := s.read()
	if err != nil {
		return nil, err
	}

	return texts(records), nil
}

// Last decodes the most recent session. It returns ErrEmpty if the file is
// missing or holds no sessions.
func (s *Store) Last() (*session.Session, error) {
	records, err := s.read()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrEmpty.Fmt(s.path)
	}

	last := records[len(records)-1]

	sess, err := session.Parse(last.text)
	if err != nil {
		return nil, errCorruptLine.Fmt(s.path, last.num).Wrap(err)
	}

	return sess, nil
}

// Append adds sess after the existing sessions and saves the file. A file
// holding a malformed line is left untouched.
func (s *Store) Append(sess *session.Session) error {
	records, err := s.read()
	if err != nil {
		return err
	}

	if err = s.check(records); err != nil {
		return err
	}

	return s.save(append(texts(records), sess.String()))
}

// ReplaceLast overwrites the most recent session with sess and saves the
// file.
func (s *Store) ReplaceLast(sess *session.Session) error {
	records, err := s.read()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return ErrEmpty.Fmt(s.path)
	}

	lines := texts(records)
	lines[len(lines)-1] = sess.String()

	return s.save(lines)
}

// read returns the non-blank lines of the file with their line numbers.
func (s *Store) read() ([]record, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errReadFile.Fmt(s.path).Wrap(err)
	}

	var records []record

	for i, line := range strings.Split(string(b), lineSeparator) {
		line = strings.TrimRight(line, "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		records = append(records, record{text: line, num: i + 1})
	}

	return records, nil
}

// check decodes every record, reporting the first malformed one.
func (s *Store) check(records []record) error {
	for _, r := range records {
		if _, err := session.Parse(r.text); err != nil {
			return errCorruptLine.Fmt(s.path, r.num).Wrap(err)
		}
	}

	return nil
}

func texts(records []record) []string {
	lines := make([]string, len(records))

	for i, r := range records {
		lines[i] = r.text
	}

	return lines
}

func (s *Store) save(lines []string) error {
	data := []byte(strings.Join(lines, lineSeparator))

	err := writeFileAtomic(s.path, data)
	if err != nil {
		return errWriteFile.Fmt(s.path).Wrap(err)
	}

	return nil
}

// writeFileAtomic replaces the contents of path with data. The data is
// written to a temporary file in the same directory which is then renamed
// over path, so the previous contents survive a failed write.
func writeFileAtomic(path string, data []byte) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	}

	dir := filepath.Dir(path)

	if err = os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return err
	}

	var mode fs.FileMode = osutil.FilePermission

	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return err
	}

	if err = tmp.Chmod(mode); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
