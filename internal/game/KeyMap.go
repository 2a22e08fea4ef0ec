package game

import (
	"fmt"
	"strings"
)

type InputMode int

const (
	ModeWASD InputMode = iota
	ModeLetters
)

func (m InputMode) String() string {
	if m == ModeLetters {
		return "letters"
	}
	return "wasd"
}

func ParseInputMode(raw string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "wasd":
		return ModeWASD, nil
	case "letters":
		return ModeLetters, nil
	default:
		return ModeWASD, fmt.Errorf("unknown input mode %q", raw)
	}
}

type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandMove
	CommandQuit
	CommandHint
)

// Command is what a single normalized input token resolves to.
type Command struct {
	Kind      CommandKind
	Direction Direction
}

type aliasGroup struct {
	command Command
	aliases []string
}

var commandAliases = []aliasGroup{
	{Command{Kind: CommandQuit}, []string{"q", "quit"}},
	{Command{Kind: CommandHint}, []string{"?", "hint"}},
}

// "d" is right in WASD mode and down in letters mode, never both.
var directionAliases = map[InputMode][]aliasGroup{
	ModeWASD: {
		{Command{Kind: CommandMove, Direction: Up}, []string{"up", "u", "w"}},
		{Command{Kind: CommandMove, Direction: Down}, []string{"down", "s"}},
		{Command{Kind: CommandMove, Direction: Left}, []string{"left", "l", "a"}},
		{Command{Kind: CommandMove, Direction: Right}, []string{"right", "r", "d"}},
	},
	ModeLetters: {
		{Command{Kind: CommandMove, Direction: Up}, []string{"up", "u"}},
		{Command{Kind: CommandMove, Direction: Down}, []string{"down", "d"}},
		{Command{Kind: CommandMove, Direction: Left}, []string{"left", "l"}},
		{Command{Kind: CommandMove, Direction: Right}, []string{"right", "r"}},
	},
}

type KeyMap struct {
	Mode    InputMode
	aliases map[string]Command
}

func NewKeyMap(mode InputMode) (*KeyMap, error) {
	groups, ok := directionAliases[mode]
	if !ok {
		return nil, fmt.Errorf("no alias table for input mode %d", mode)
	}
	return buildKeyMap(mode, append(append([]aliasGroup{}, groups...), commandAliases...))
}

func buildKeyMap(mode InputMode, groups []aliasGroup) (*KeyMap, error) {
	aliases := make(map[string]Command)
	for _, group := range groups {
		for _, alias := range group.aliases {
			key := normalizeToken(alias)
			if _, exists := aliases[key]; exists {
				return nil, fmt.Errorf("duplicate alias %q in %s input mode", key, mode)
			}
			aliases[key] = group.command
		}
	}
	return &KeyMap{Mode: mode, aliases: aliases}, nil
}

// Resolve maps a raw token to a command. Unknown tokens resolve to CommandUnknown.
func (km *KeyMap) Resolve(token string) Command {
	command, ok := km.aliases[normalizeToken(token)]
	if !ok {
		return Command{Kind: CommandUnknown}
	}
	return command
}

// Aliases returns the tokens accepted for a direction.
func (km *KeyMap) Aliases(dir Direction) []string {
	for _, group := range directionAliases[km.Mode] {
		if group.command.Direction == dir {
			return group.aliases
		}
	}
	return nil
}

// InvalidInputHint is shown for tokens that do not resolve to anything.
func (km *KeyMap) InvalidInputHint() string {
	if km.Mode == ModeLetters {
		return "Use u/l/d/r or up/left/down/right. (q to quit)"
	}
	return "Use w/a/s/d or u/l/r. (q to quit)"
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
