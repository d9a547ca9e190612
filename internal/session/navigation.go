package session

import "github.com/abhisek/annotiz/internal/question"

// Direction is a navigation step.
type Direction int

const (
	DirPrevious Direction = iota
	DirNext
)

// MaxShortcuts is the number of options reachable by a shortcut symbol.
const MaxShortcuts = 6

// Digit and letter shortcuts address the same positions.
var shortcutPositions = map[string]int{
	"1": 0, "2": 1, "3": 2, "4": 3, "5": 4, "6": 5,
	"a": 0, "b": 1, "c": 2, "d": 3, "e": 4, "f": 5,
}

// Move returns the index after one step in dir, wrapping at both ends.
func Move(current int, dir Direction, length int) int {
	if length < 1 {
		return 0
	}
	switch dir {
	case DirPrevious:
		current--
	case DirNext:
		current++
	}
	return ((current % length) + length) % length
}

// ShortcutPosition maps a shortcut symbol to a zero-based option position.
func ShortcutPosition(symbol string) (int, bool) {
	pos, ok := shortcutPositions[symbol]
	return pos, ok
}

// ShortcutLabel returns the digit shown next to the option at pos.
func ShortcutLabel(pos int) string {
	if pos < 0 || pos >= MaxShortcuts {
		return " "
	}
	return string(rune('1' + pos))
}

// ResolveOption returns the option text bound to symbol for q.
func ResolveOption(symbol string, q question.Question) (string, bool) {
	pos, ok := ShortcutPosition(symbol)
	if !ok || pos >= len(q.Options) {
		return "", false
	}
	return q.Options[pos], true
}
