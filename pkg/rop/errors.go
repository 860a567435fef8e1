package rop

import (
	"fmt"

	"github.com/pkg/errors"
)

// Ordinal names of the positional arguments checked by the repeater.
const (
	FirstArgument  = "First"
	SecondArgument = "Second"
	ThirdArgument  = "Third"
)

// ErrInvalidArgument is returned when a required argument is not usable.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Ordinal of the argument, e.g., "First"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional explanation, e.g., "must be a function"
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("invalid argument. %s argument is invalid. Value: `%v`.", err.Name, err.Value)
	}
	return fmt.Sprintf("invalid argument. %s argument %s. Value: `%v`.", err.Name, err.Message, err.Value)
}

// NotAFunction builds the error for a positional argument that cannot be called.
func NotAFunction(name string, value interface{}) error {
	return errors.WithStack(&ErrInvalidArgument{
		Name:    name,
		Value:   value,
		Message: "must be a function",
	})
}

// IsInvalidArgument reports whether err, or any error it wraps, is an
// ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	var e *ErrInvalidArgument
	return errors.As(err, &e)
}
