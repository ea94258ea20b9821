package base64

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned by Decode when the input is absent
	// (a nil byte slice). An empty-but-present input is a length
	// error, not an input error.
	ErrInvalidInput = errors.New("base64: invalid input: no input provided")

	// ErrInvalidLength is returned by Decode when the input, after
	// whitespace removal, is empty or not a multiple of four
	// characters long.
	ErrInvalidLength = errors.New("base64: invalid length")

	// ErrInvalidCharacter matches any *InvalidCharacterError via
	// errors.Is.
	ErrInvalidCharacter = errors.New("base64: invalid character")
)

// InvalidCharacterError is returned by Decode when a non-whitespace
// byte outside the Base64 alphabet (plus padding) is found. It carries
// the offending byte and its position in the whitespace-stripped input.
type InvalidCharacterError struct {
	Char     byte
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("base64: invalid character %q at position %d", e.Char, e.Position)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

func newInvalidCharacterError(char byte, position int) *InvalidCharacterError {
	return &InvalidCharacterError{Char: char, Position: position}
}
