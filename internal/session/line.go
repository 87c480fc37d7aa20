package session

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// Delimiter separates the fields of an encoded session.
	Delimiter = ";"
	// Layout is the timestamp format of encoded sessions.
	Layout = "2006-01-02 15:04:05 -0700"
)

// strictLayouts are the only formats accepted where a field may hold either
// a timestamp or a description.
var strictLayouts = []string{Layout, time.RFC3339}

// String encodes the session as a single line of up to three fields: start,
// stop and description. Absent fields are left out.
func (s *Session) String() string {
	fields := []string{s.Start.Format(Layout)}

	if !s.Stop.IsZero() {
		fields = append(fields, s.Stop.Format(Layout))
	}

	if s.Description != "" {
		fields = append(fields, s.Description)
	}

	return strings.Join(fields, Delimiter)
}

// Parse decodes a line produced by String. A two-field line is read as
// start and stop only when the second field is a timestamp in Layout or
// RFC3339, and as start and description otherwise. Fields that can only hold
// a timestamp (the start, and the stop of a three-field line) also accept any
// format dateparse understands, so "T;2017-02-02 13:49" has a description
// while "T;2017-02-02 13:49;x" has a stop time.
func Parse(line string) (*Session, error) {
	line = strings.TrimRight(line, "\r\n")

	parts := strings.Split(line, Delimiter)
	if len(parts) > 3 {
		return nil, ErrMalformedLine.Fmt(line)
	}

	start, ok := parseStamp(parts[0])
	if !ok {
		return nil, ErrMalformedLine.Fmt(line)
	}

	sess := &Session{
		Start: start,
	}

	switch len(parts) {
	case 2:
		if stop, ok := parseStrictStamp(parts[1]); ok {
			sess.Stop = stop
		} else {
			sess.Description = parts[1]
		}
	case 3:
		stop, ok := parseStamp(parts[1])
		if !ok {
			return nil, ErrMalformedLine.Fmt(line)
		}

		sess.Stop = stop
		sess.Description = parts[2]
	}

	if err := sess.Validate(); err != nil {
		return nil, err
	}

	return sess, nil
}

// ValidateDescription reports whether desc can be encoded and read back as
// the description of a running session.
func ValidateDescription(desc string) error {
	if strings.ContainsAny(desc, Delimiter+"\r\n") {
		return ErrInvalidDescription.Fmt(
			desc,
			"must not contain \""+Delimiter+"\" or line breaks",
		)
	}

	// it would be read back as the stop time
	if _, ok := parseStrictStamp(desc); ok {
		return ErrInvalidDescription.Fmt(desc, "must not be a timestamp")
	}

	return nil
}

// parseStrictStamp reads s as a timestamp in one of the strict layouts.
func parseStrictStamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	for _, layout := range strictLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseStamp reads s as a timestamp, falling back to any format dateparse
// understands. Only used for fields that cannot hold a description.
func parseStamp(s string) (time.Time, bool) {
	if t, ok := parseStrictStamp(s); ok {
		return t, true
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
