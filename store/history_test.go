package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/avocado/internal/session"
	"github.com/ayoisaiah/avocado/store"
)

func TestHistoryRecord(t *testing.T) {
	h := store.NewHistory(filepath.Join(t.TempDir(), ".avocado_history"))

	out, err := h.Read()
	require.NoError(t, err)
	assert.Empty(t, out)

	first := session.New(time.Date(2017, 2, 2, 13, 24, 13, 0, cst), "doing things")
	first.AutoComplete()

	second := session.New(time.Date(2017, 2, 2, 14, 0, 0, 0, cst), "")
	require.NoError(t, second.End(time.Date(2017, 2, 2, 14, 10, 0, 0, cst)))

	require.NoError(t, h.Record(first))
	require.NoError(t, h.Record(second))

	out, err = h.Read()
	require.NoError(t, err)

	want := "2017-02-02 13:24:13 -0600 2017-02-02 13:49:13 -0600\n" +
		"2017-02-02 14:00:00 -0600 2017-02-02 14:10:00 -0600\n"

	assert.Equal(t, want, out)
}

func TestHistoryRecordRunningSession(t *testing.T) {
	h := store.NewHistory(filepath.Join(t.TempDir(), ".avocado_history"))

	err := h.Record(session.New(time.Date(2017, 2, 2, 13, 24, 13, 0, cst), ""))
	require.Error(t, err)

	out, err := h.Read()
	require.NoError(t, err)
	assert.Empty(t, out)
}
