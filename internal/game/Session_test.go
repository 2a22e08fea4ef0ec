package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, tiles [][]Tile) *Session {
	t.Helper()
	keyMap, err := NewKeyMap(ModeWASD)
	require.NoError(t, err)
	return NewSession(GridFromTiles(tiles), keyMap)
}

func exampleTiles() [][]Tile {
	return [][]Tile{
		{Visited, Background, Hole},
		{Background, Hole, Background},
		{Background, Hat, Background},
	}
}

func TestSessionWalksToHat(t *testing.T) {
	session := newTestSession(t, exampleTiles())

	assert.Equal(t, OutcomeContinue, session.Move(Down))
	assert.Equal(t, Position{Row: 1, Col: 0}, session.Cursor)
	assert.Equal(t, Visited, session.Grid.At(Position{Row: 1, Col: 0}))

	assert.Equal(t, OutcomeContinue, session.Move(Down))
	assert.Equal(t, Position{Row: 2, Col: 0}, session.Cursor)

	assert.Equal(t, OutcomeFoundHat, session.Move(Right))
	assert.Equal(t, StateWon, session.State())
	assert.True(t, session.IsOver())
	assert.Equal(t, 2, session.Moves())
	// the cursor stays put on a terminal move
	assert.Equal(t, Position{Row: 2, Col: 0}, session.Cursor)
}

func TestSessionTerminalOutcomes(t *testing.T) {
	t.Run("fell in hole", func(t *testing.T) {
		session := newTestSession(t, exampleTiles())
		require.Equal(t, OutcomeContinue, session.Move(Right))

		assert.Equal(t, OutcomeFellInHole, session.Move(Right))
		assert.Equal(t, StateLost, session.State())
		assert.Equal(t, OutcomeFellInHole, session.LastOutcome())
	})

	t.Run("out of bounds", func(t *testing.T) {
		session := newTestSession(t, exampleTiles())

		assert.Equal(t, OutcomeOutOfBounds, session.Move(Up))
		assert.Equal(t, StateLost, session.State())
		assert.Equal(t, Position{Row: 0, Col: 0}, session.Cursor)
	})

	t.Run("left edge is out of bounds", func(t *testing.T) {
		session := newTestSession(t, exampleTiles())
		assert.Equal(t, OutcomeOutOfBounds, session.Move(Left))
	})
}

func TestSessionIsAbsorbingAfterTerminalOutcome(t *testing.T) {
	session := newTestSession(t, exampleTiles())
	require.Equal(t, OutcomeOutOfBounds, session.Move(Up))
	before := session.Grid.String()

	assert.Equal(t, OutcomeSessionOver, session.Move(Down))
	assert.Equal(t, OutcomeSessionOver, session.MoveToken("s"))
	assert.Equal(t, StateLost, session.State())
	assert.Equal(t, OutcomeOutOfBounds, session.LastOutcome())
	assert.Equal(t, Position{Row: 0, Col: 0}, session.Cursor)
	assert.Equal(t, before, session.Grid.String())
}

func TestSessionMoveToken(t *testing.T) {
	session := newTestSession(t, exampleTiles())

	assert.Equal(t, OutcomeContinue, session.MoveToken(" S "))
	assert.Equal(t, Position{Row: 1, Col: 0}, session.Cursor)

	assert.Equal(t, OutcomeContinue, session.MoveToken("DOWN"))
	assert.Equal(t, OutcomeFoundHat, session.MoveToken("d"))
}

func TestSessionInvalidTokenIsIdempotent(t *testing.T) {
	session := newTestSession(t, exampleTiles())
	before := session.Grid.String()

	for i := 0; i < 2; i++ {
		assert.Equal(t, OutcomeInvalidInput, session.MoveToken("jump"))
		assert.Equal(t, Position{Row: 0, Col: 0}, session.Cursor)
		assert.Equal(t, before, session.Grid.String())
		assert.Equal(t, StatePlaying, session.State())
		assert.Equal(t, 0, session.Moves())
	}

	// command tokens are not moves either
	assert.Equal(t, OutcomeInvalidInput, session.MoveToken("q"))
	assert.Equal(t, OutcomeInvalidInput, session.MoveToken("?"))
	assert.False(t, session.IsOver())
}

func TestSessionLeavesTrail(t *testing.T) {
	session := newTestSession(t, [][]Tile{
		{Visited, Background, Background},
		{Background, Background, Background},
		{Background, Background, Hat},
	})

	for _, dir := range []Direction{Right, Down, Left, Down} {
		require.Equal(t, OutcomeContinue, session.Move(dir))
	}
	assert.Equal(t, 5, session.Grid.Count(Visited))
	assert.Equal(t, OutcomeContinue, session.Move(Right))
	assert.Equal(t, OutcomeFoundHat, session.Move(Right))
	assert.Equal(t, 6, session.Grid.Count(Visited))
	assert.Equal(t, 1, session.Grid.Count(Hat))
}

func TestOutcomeMessages(t *testing.T) {
	assert.Equal(t, "Sorry, out of bounds!", OutcomeOutOfBounds.Message())
	assert.Equal(t, "Sorry, you fell into a hole!", OutcomeFellInHole.Message())
	assert.Equal(t, "Congrats! You found your hat!", OutcomeFoundHat.Message())
	assert.Empty(t, OutcomeContinue.Message())

	assert.True(t, OutcomeFoundHat.IsTerminal())
	assert.False(t, OutcomeInvalidInput.IsTerminal())
	assert.False(t, OutcomeSessionOver.IsTerminal())
}
