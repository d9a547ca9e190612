package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func sample() []Question {
	return []Question{
		{Prompt: "2 + 2?", Options: []string{"3", "4", "5"}, ReferenceAnswer: "4"},
		{Prompt: "Capital of France?", Options: []string{"Paris", "Rome"}, ReferenceAnswer: "Paris"},
	}
}

func TestNewSet_Empty(t *testing.T) {
	_, err := NewSet(nil)
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestNewSet_RejectsForeignAnswer(t *testing.T) {
	qs := sample()
	qs[1].HumanAnswer = ptr("Berlin")

	_, err := NewSet(qs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestNewSet_CopiesInput(t *testing.T) {
	qs := sample()
	s, err := NewSet(qs)
	require.NoError(t, err)

	qs[0].Options[0] = "changed"
	got, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "3", got.Options[0])
}

func TestAt_ReturnsCopy(t *testing.T) {
	s, err := NewSet(sample())
	require.NoError(t, err)
	require.NoError(t, s.SetHumanAnswer(0, "4"))

	q, err := s.At(0)
	require.NoError(t, err)
	*q.HumanAnswer = "5"
	q.Options[1] = "x"

	again, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "4", *again.HumanAnswer)
	assert.Equal(t, "4", again.Options[1])
}

func TestAt_OutOfRange(t *testing.T) {
	s, err := NewSet(sample())
	require.NoError(t, err)

	for _, i := range []int{-1, 2, 100} {
		_, err := s.At(i)
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", i)
	}
}

func TestSetClassification(t *testing.T) {
	s, err := NewSet(sample())
	require.NoError(t, err)

	require.NoError(t, s.SetClassification(1, true))
	q, _ := s.At(1)
	require.NotNil(t, q.Classification)
	assert.True(t, *q.Classification)

	require.NoError(t, s.SetClassification(1, false))
	q, _ = s.At(1)
	assert.False(t, *q.Classification)

	assert.ErrorIs(t, s.SetClassification(2, true), ErrOutOfRange)
}

func TestSetHumanAnswer(t *testing.T) {
	s, err := NewSet(sample())
	require.NoError(t, err)

	require.NoError(t, s.SetHumanAnswer(1, "Rome"))
	q, _ := s.At(1)
	assert.Equal(t, "Rome", *q.HumanAnswer)

	err = s.SetHumanAnswer(1, "rome")
	assert.ErrorIs(t, err, ErrInvalidOption)
	q, _ = s.At(1)
	assert.Equal(t, "Rome", *q.HumanAnswer, "failed mutation must not change the answer")

	assert.ErrorIs(t, s.SetHumanAnswer(-1, "Rome"), ErrOutOfRange)
}

func TestCount(t *testing.T) {
	qs := sample()
	qs[0].Classification = ptr(false)
	s, err := NewSet(qs)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Count(Question.Classified))
	assert.Equal(t, 0, s.Count(Question.Answered))
}

func TestEmptyStringAnswerIsPresent(t *testing.T) {
	qs := []Question{{Prompt: "blank?", Options: []string{"", "something"}}}
	s, err := NewSet(qs)
	require.NoError(t, err)

	q, _ := s.At(0)
	assert.False(t, q.Answered())

	require.NoError(t, s.SetHumanAnswer(0, ""))
	q, _ = s.At(0)
	assert.True(t, q.Answered())
	assert.Equal(t, "", *q.HumanAnswer)
}
