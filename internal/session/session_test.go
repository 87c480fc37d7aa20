package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/avocado/internal/session"
)

var cst = time.FixedZone("", -6*60*60)

func startTime() time.Time {
	return time.Date(2017, 2, 2, 13, 24, 13, 0, cst)
}

func TestMinutesRemaining(t *testing.T) {
	cases := []struct {
		Name    string
		Elapsed time.Duration
		Want    int
	}{
		{"just started", 0, 25},
		{"two minutes in", 2 * time.Minute, 23},
		{"partial minute rounds down", 90 * time.Second, 23},
		{"exactly at the end", session.Length, 0},
		{"one second over", session.Length + time.Second, -1},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			sess := session.New(startTime(), "")

			got := sess.MinutesRemaining(startTime().Add(tc.Elapsed))

			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestOverrun(t *testing.T) {
	sess := session.New(startTime(), "")

	assert.False(t, sess.Overrun(startTime().Add(session.Length)))
	assert.True(t, sess.Overrun(startTime().Add(session.Length+time.Second)))

	sess.AutoComplete()

	assert.False(
		t,
		sess.Overrun(startTime().AddDate(0, 2, 0)),
		"a done session is never overrun",
	)
}

func TestAutoComplete(t *testing.T) {
	sess := session.New(startTime(), "doing things")

	sess.AutoComplete()

	assert.True(t, sess.Done())
	assert.True(t, sess.Stop.Equal(startTime().Add(1500*time.Second)))
	assert.Equal(t, session.Length, sess.Duration())
}

func TestRemaining(t *testing.T) {
	sess := session.New(startTime(), "")

	r := sess.Remaining(startTime().Add(90 * time.Second))
	assert.Equal(t, session.Remainder{T: 1410, M: 23, S: 30}, r)

	r = sess.Remaining(startTime().Add(time.Hour))
	assert.Equal(t, session.Remainder{}, r)
}

func TestEnd(t *testing.T) {
	sess := session.New(startTime(), "")

	err := sess.End(startTime().Add(-time.Minute))
	require.ErrorIs(t, err, session.ErrNegativeDuration)
	assert.False(t, sess.Done())

	err = sess.End(startTime().Add(10 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, sess.Duration())
}

func TestValidateMissingStart(t *testing.T) {
	sess := &session.Session{}

	assert.ErrorIs(t, sess.Validate(), session.ErrMissingStart)
}
