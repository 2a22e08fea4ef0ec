package game

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

var ErrNoSafeMove = errors.New("no safe move around the cursor")

const edgeTileName = "edge"

// DefaultHintScript heads for an adjacent hat, then fresh ground, then the trail.
const DefaultHintScript = `
function nextDirection(view)
	local order = {"up", "right", "down", "left"}
	for _, wanted in ipairs({"hat", "background", "visited"}) do
		for _, dir in ipairs(order) do
			if view[dir] == wanted then
				return dir
			end
		end
	end
	return nil
end
`

type HintStrategy struct {
	Name   string
	Script string
}

func NewDefaultHintStrategy() *HintStrategy {
	return &HintStrategy{Name: "default", Script: DefaultHintScript}
}

// Suggest runs the script against the four neighbours of the cursor.
// A fresh Lua state is used per call so scripts cannot keep state between moves.
func (h *HintStrategy) Suggest(session *Session) (Direction, error) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(h.Script); err != nil {
		return Up, fmt.Errorf("could not parse hint script %s: %w", h.Name, err)
	}

	fn, ok := luaState.GetGlobal("nextDirection").(*lua.LFunction)
	if !ok {
		return Up, fmt.Errorf("hint script %s does not define nextDirection", h.Name)
	}

	if err := luaState.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, neighbourView(luaState, session)); err != nil {
		return Up, fmt.Errorf("could not execute hint script %s: %w", h.Name, err)
	}

	ret := luaState.Get(-1)
	luaState.Pop(1)

	if ret == lua.LNil {
		return Up, ErrNoSafeMove
	}

	name, ok := ret.(lua.LString)
	if !ok {
		return Up, fmt.Errorf("hint script %s returned %s, expected string", h.Name, ret.Type().String())
	}

	dir, ok := DirectionFromName(string(name))
	if !ok {
		return Up, fmt.Errorf("hint script %s returned unknown direction %q", h.Name, string(name))
	}
	return dir, nil
}

func neighbourView(luaState *lua.LState, session *Session) *lua.LTable {
	view := luaState.NewTable()
	for _, dir := range Directions {
		tile, inBounds := session.Neighbour(dir)
		name := edgeTileName
		if inBounds {
			name = tile.String()
		}
		view.RawSetString(dir.String(), lua.LString(name))
	}
	return view
}
