package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

var namedKeys = map[string]core.Key{
	"UP":    core.KeyUp,
	"DOWN":  core.KeyDown,
	"LEFT":  core.KeyLeft,
	"RIGHT": core.KeyRight,
	"NONE":  core.KeyNone,
	"_":     core.KeyNone,
}

// ParseKeys parses a comma-separated key script such as "S,RIGHT,_,P".
// Single characters are letter keys; UP, DOWN, LEFT and RIGHT are arrows;
// "_" or NONE is an idle frame.
func ParseKeys(script string) ([]core.Key, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}

	var keys []core.Key
	for i, tok := range strings.Split(script, ",") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if k, ok := namedKeys[tok]; ok {
			keys = append(keys, k)
			continue
		}
		if utf8.RuneCountInString(tok) != 1 {
			return nil, fmt.Errorf("game: key %d: unknown key %q", i+1, tok)
		}
		r, _ := utf8.DecodeRuneInString(tok)
		keys = append(keys, core.NormalizeKey(r))
	}
	return keys, nil
}

// ScriptedInput replays a fixed key sequence, one key every Every frames.
// Between keys and after the script ends it reports KeyNone.
type ScriptedInput struct {
	keys  []core.Key
	every int
	frame int
	next  int
}

// NewScriptedInput creates an input source replaying keys.
func NewScriptedInput(keys []core.Key, every int) *ScriptedInput {
	return &ScriptedInput{keys: keys, every: max(1, every)}
}

// Poll returns the key for the current frame.
func (s *ScriptedInput) Poll() core.Key {
	defer func() { s.frame++ }()
	if s.next >= len(s.keys) || s.frame%s.every != 0 {
		return core.KeyNone
	}
	k := s.keys[s.next]
	s.next++
	return k
}

// Done reports whether every scripted key has been delivered.
func (s *ScriptedInput) Done() bool {
	return s.next >= len(s.keys)
}
