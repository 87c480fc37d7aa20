package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		token string
		want  Command
	}{
		{"start", Start},
		{"stop", Stop},
		{"status", Status},
		{"st", Status},
		{"STATUS", Status},
		{" St ", Status},
		{"", Status},
		{"history", History},
		{"h", History},
		{"watch", Watch},
		{"W", Watch},
	}

	for _, tc := range cases {
		got, err := Resolve(tc.token)
		require.NoError(t, err, "token: %q", tc.token)
		assert.Equal(t, tc.want, got, "token: %q", tc.token)
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, token := range []string{"pause", "s", "starts", "hist"} {
		_, err := Resolve(token)
		assert.ErrorIs(t, err, ErrUnknownCommand, "token: %q", token)
	}
}

func TestAliases(t *testing.T) {
	assert.Equal(t, []string{"st"}, Aliases(Status))
	assert.Equal(t, []string{"h"}, Aliases(History))
	assert.Equal(t, []string{"w"}, Aliases(Watch))
	assert.Empty(t, Aliases(Start))
	assert.Nil(t, Aliases(Command("pause")))
}

func TestCommands(t *testing.T) {
	assert.Equal(
		t,
		[]Command{Start, Stop, Status, History, Watch},
		Commands(),
	)
}
