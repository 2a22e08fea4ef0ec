package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMapModesResolveD(t *testing.T) {
	wasd, err := NewKeyMap(ModeWASD)
	require.NoError(t, err)
	letters, err := NewKeyMap(ModeLetters)
	require.NoError(t, err)

	assert.Equal(t, Command{Kind: CommandMove, Direction: Right}, wasd.Resolve("d"))
	assert.Equal(t, Command{Kind: CommandMove, Direction: Down}, letters.Resolve("d"))
}

func TestKeyMapResolve(t *testing.T) {
	keyMap, err := NewKeyMap(ModeWASD)
	require.NoError(t, err)

	testCases := []struct {
		token string
		want  Command
	}{
		{"w", Command{Kind: CommandMove, Direction: Up}},
		{"U", Command{Kind: CommandMove, Direction: Up}},
		{"  up ", Command{Kind: CommandMove, Direction: Up}},
		{"s", Command{Kind: CommandMove, Direction: Down}},
		{"Down", Command{Kind: CommandMove, Direction: Down}},
		{"a", Command{Kind: CommandMove, Direction: Left}},
		{"l", Command{Kind: CommandMove, Direction: Left}},
		{"r", Command{Kind: CommandMove, Direction: Right}},
		{"q", Command{Kind: CommandQuit}},
		{"QUIT", Command{Kind: CommandQuit}},
		{"?", Command{Kind: CommandHint}},
		{"hint", Command{Kind: CommandHint}},
		{"", Command{Kind: CommandUnknown}},
		{"x", Command{Kind: CommandUnknown}},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.want, keyMap.Resolve(tc.token))
		})
	}
}

func TestLettersModeRejectsWASDOnlyKeys(t *testing.T) {
	keyMap, err := NewKeyMap(ModeLetters)
	require.NoError(t, err)

	for _, token := range []string{"w", "a", "s"} {
		assert.Equal(t, CommandUnknown, keyMap.Resolve(token).Kind, token)
	}
}

func TestBuildKeyMapFailsOnDuplicateAlias(t *testing.T) {
	_, err := buildKeyMap(ModeWASD, []aliasGroup{
		{Command{Kind: CommandMove, Direction: Down}, []string{"down", "d"}},
		{Command{Kind: CommandMove, Direction: Right}, []string{"right", "D"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate alias "d"`)
}

func TestEveryModeHasAllDirections(t *testing.T) {
	for _, mode := range []InputMode{ModeWASD, ModeLetters} {
		keyMap, err := NewKeyMap(mode)
		require.NoError(t, err)
		for _, dir := range Directions {
			aliases := keyMap.Aliases(dir)
			require.NotEmpty(t, aliases)
			assert.Equal(t, Command{Kind: CommandMove, Direction: dir}, keyMap.Resolve(dir.String()))
		}
	}
}

func TestParseInputMode(t *testing.T) {
	mode, err := ParseInputMode("Letters")
	require.NoError(t, err)
	assert.Equal(t, ModeLetters, mode)

	mode, err = ParseInputMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeWASD, mode)

	_, err = ParseInputMode("vim")
	assert.Error(t, err)
}
