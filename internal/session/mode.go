package session

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a mode selector is not recognised.
var ErrInvalidMode = errors.New("mode must be either 'classify' or 'answer'")

// Mode is the annotation task for a session. It is fixed once the session starts.
type Mode int

const (
	ModeClassify Mode = iota // Judge whether each question is higher-order
	ModeAnswer               // Pick the correct option for each question
)

// ParseMode maps a launch selector to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classify":
		return ModeClassify, nil
	case "answer":
		return ModeAnswer, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidMode)
}

func (m Mode) String() string {
	if m == ModeClassify {
		return "classify"
	}
	return "answer"
}
