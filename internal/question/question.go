package question

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptySet is returned when a question set has no questions.
	ErrEmptySet = errors.New("question set is empty")

	// ErrOutOfRange is returned when an index does not address a question.
	ErrOutOfRange = errors.New("question index out of range")

	// ErrInvalidOption is returned when a human answer is not one of the
	// question's options.
	ErrInvalidOption = errors.New("answer is not one of the question options")
)

// Question is one multiple-choice item to annotate.
type Question struct {
	// Prompt is the question text.
	Prompt string

	// Options are the candidate answers. Order defines the shortcut mapping.
	Options []string

	// ReferenceAnswer is the answer stated by the source document.
	ReferenceAnswer string

	// Classification is nil until a human judges the question higher-order or not.
	Classification *bool

	// HumanAnswer is nil until a human selects one of Options.
	HumanAnswer *string
}

// Classified reports whether the question carries a classification.
func (q Question) Classified() bool {
	return q.Classification != nil
}

// Answered reports whether the question carries a human answer.
func (q Question) Answered() bool {
	return q.HumanAnswer != nil
}

// HasOption reports whether text is one of the options, verbatim.
func (q Question) HasOption(text string) bool {
	return slices.Contains(q.Options, text)
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	c := q
	c.Options = slices.Clone(q.Options)
	if q.Classification != nil {
		v := *q.Classification
		c.Classification = &v
	}
	if q.HumanAnswer != nil {
		v := *q.HumanAnswer
		c.HumanAnswer = &v
	}
	return c
}

// Set is the ordered, fixed-length collection of questions for a session.
type Set struct {
	questions []Question
}

// NewSet validates qs and takes ownership of a copy of it.
func NewSet(qs []Question) (*Set, error) {
	if len(qs) == 0 {
		return nil, ErrEmptySet
	}
	owned := make([]Question, len(qs))
	for i, q := range qs {
		if q.HumanAnswer != nil && !q.HasOption(*q.HumanAnswer) {
			return nil, fmt.Errorf("question %d: %q: %w", i+1, *q.HumanAnswer, ErrInvalidOption)
		}
		owned[i] = q.Clone()
	}
	return &Set{questions: owned}, nil
}

// Len returns the number of questions.
func (s *Set) Len() int {
	return len(s.questions)
}

// At returns a copy of the question at index i.
func (s *Set) At(i int) (Question, error) {
	if err := s.check(i); err != nil {
		return Question{}, err
	}
	return s.questions[i].Clone(), nil
}

// All returns copies of every question in order.
func (s *Set) All() []Question {
	out := make([]Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Clone()
	}
	return out
}

// SetClassification records the higher-order judgment for question i.
func (s *Set) SetClassification(i int, higherOrder bool) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.questions[i].Classification = &higherOrder
	return nil
}

// SetHumanAnswer records text as the human answer for question i.
// text must be one of the question's options.
func (s *Set) SetHumanAnswer(i int, text string) error {
	if err := s.check(i); err != nil {
		return err
	}
	if !s.questions[i].HasOption(text) {
		return fmt.Errorf("question %d: %q: %w", i+1, text, ErrInvalidOption)
	}
	s.questions[i].HumanAnswer = &text
	return nil
}

// Count returns the number of questions for which pred holds.
func (s *Set) Count(pred func(Question) bool) int {
	n := 0
	for _, q := range s.questions {
		if pred(q) {
			n++
		}
	}
	return n
}

func (s *Set) check(i int) error {
	if i < 0 || i >= len(s.questions) {
		return fmt.Errorf("index %d of %d: %w", i, len(s.questions), ErrOutOfRange)
	}
	return nil
}
