package questionfile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadableFile is returned when the question file cannot be read.
	ErrUnreadableFile = errors.New("unreadable question file")

	// ErrMalformedData is returned when the file content is not a valid question list.
	ErrMalformedData = errors.New("malformed question data")
)

// SerializationError indicates the question set could not be encoded.
// Nothing has been written when it is returned.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// IOError indicates the encoded set could not be written. The previous file
// content is left in place.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
