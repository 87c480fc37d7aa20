package session_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/avocado/internal/session"
)

type ParseTest struct {
	Want *session.Session
	Name string
	Line string
}

var parseTestCases = []ParseTest{
	{
		Name: "start only",
		Line: "2017-02-02 13:24:13 -0600",
		Want: &session.Session{
			Start: startTime(),
		},
	},
	{
		Name: "start and stop",
		Line: "2017-02-02 13:24:13 -0600;2017-02-02 13:49:13 -0600",
		Want: &session.Session{
			Start: startTime(),
			Stop:  startTime().Add(25 * time.Minute),
		},
	},
	{
		Name: "start and description",
		Line: "2017-02-02 13:24:13 -0600;doing the things",
		Want: &session.Session{
			Start:       startTime(),
			Description: "doing the things",
		},
	},
	{
		Name: "numeric description is not a timestamp",
		Line: "2017-02-02 13:24:13 -0600;42",
		Want: &session.Session{
			Start:       startTime(),
			Description: "42",
		},
	},
	{
		Name: "start, stop and description",
		Line: "2017-02-02 13:24:13 -0600;2017-02-02 13:34:13 -0600;doing the things",
		Want: &session.Session{
			Start:       startTime(),
			Stop:        startTime().Add(10 * time.Minute),
			Description: "doing the things",
		},
	},
	{
		Name: "windows line ending",
		Line: "2017-02-02 13:24:13 -0600;doing the things\r\n",
		Want: &session.Session{
			Start:       startTime(),
			Description: "doing the things",
		},
	},
	{
		Name: "rfc3339 start from a hand edited file",
		Line: "2017-02-02T13:24:13-06:00;doing the things",
		Want: &session.Session{
			Start:       startTime(),
			Description: "doing the things",
		},
	},
}

func TestParse(t *testing.T) {
	for _, tc := range parseTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := session.Parse(tc.Line)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.Line, diff)
			}
		})
	}
}

func TestParseDone(t *testing.T) {
	sess, err := session.Parse("2017-02-02 13:24:13 -0600")
	require.NoError(t, err)
	assert.False(t, sess.Done())

	sess, err = session.Parse(
		"2017-02-02 13:24:13 -0600;2017-02-02 13:49:13 -0600",
	)
	require.NoError(t, err)
	assert.True(t, sess.Done())

	sess, err = session.Parse("2017-02-02 13:24:13 -0600;doing the things")
	require.NoError(t, err)
	assert.False(t, sess.Done())
	assert.True(t, sess.Stop.IsZero())
}

func TestParseMalformed(t *testing.T) {
	lines := []string{
		"",
		"doing the things",
		"doing the things;2017-02-02 13:24:13 -0600",
		"2017-02-02 13:24:13 -0600;not a time;doing the things",
		"2017-02-02 13:24:13 -0600;2017-02-02 13:49:13 -0600;a;b",
	}

	for _, line := range lines {
		_, err := session.Parse(line)
		assert.ErrorIs(t, err, session.ErrMalformedLine, "line: %q", line)
	}
}

func TestParseNegativeDuration(t *testing.T) {
	_, err := session.Parse(
		"2017-02-02 13:24:13 -0600;2017-02-02 13:00:00 -0600;oops",
	)

	assert.ErrorIs(t, err, session.ErrNegativeDuration)
}

func TestEncode(t *testing.T) {
	cases := []struct {
		Sess *session.Session
		Want string
	}{
		{
			Sess: session.New(startTime(), ""),
			Want: "2017-02-02 13:24:13 -0600",
		},
		{
			Sess: session.New(startTime(), "doing the things"),
			Want: "2017-02-02 13:24:13 -0600;doing the things",
		},
		{
			Sess: &session.Session{
				Start: startTime(),
				Stop:  startTime().Add(session.Length),
			},
			Want: "2017-02-02 13:24:13 -0600;2017-02-02 13:49:13 -0600",
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.Want, tc.Sess.String())
	}
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"2017-02-02 13:24:13 -0600",
		"2017-02-02 13:24:13 -0600;doing the things",
		"2017-02-02 13:24:13 -0600;2017-02-02 13:49:13 -0600",
		"2017-02-02 13:24:13 -0600;2017-02-02 13:34:13 -0600;doing the things",
		"2024-07-01 09:00:00 +0100;2024-07-01 09:25:00 +0100;write: the report",
	}

	for _, line := range lines {
		first, err := session.Parse(line)
		require.NoError(t, err)

		assert.Equal(t, line, first.String())

		second, err := session.Parse(first.String())
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("round trip of %q mismatch (-first +second):\n%s", line, diff)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, session.ValidateDescription("doing the things"))
	assert.ErrorIs(
		t,
		session.ValidateDescription("this; that"),
		session.ErrInvalidDescription,
	)
	assert.ErrorIs(
		t,
		session.ValidateDescription("two\nlines"),
		session.ErrInvalidDescription,
	)

	for _, desc := range []string{
		"2000-01-01 00:00:00 +0000",
		"2030-01-01T00:00:00Z",
		" 2017-02-02 13:49:13 -0600 ",
	} {
		assert.ErrorIs(
			t,
			session.ValidateDescription(desc),
			session.ErrInvalidDescription,
			"description: %q",
			desc,
		)
	}

	// dates that are not full timestamps stay descriptions
	assert.NoError(t, session.ValidateDescription("2017-02-02 review"))
	assert.NoError(t, session.ValidateDescription("42"))
}

func TestParseLenientStopOnlyInThreeFields(t *testing.T) {
	sess, err := session.Parse("2017-02-02 13:24:13 -0600;2017-02-02 13:49")
	require.NoError(t, err)
	assert.False(t, sess.Done())
	assert.Equal(t, "2017-02-02 13:49", sess.Description)

	sess, err = session.Parse("2017-02-02 13:24:13 -0600;2017-02-02 13:49:13 -0600;x")
	require.NoError(t, err)
	assert.True(t, sess.Done())
	assert.Equal(t, "x", sess.Description)
}
