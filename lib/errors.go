package lib

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEndOfInput means the source ran out while a construct (string
// literal, number literal, statement) was still open.
var ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

// InvalidCharError is returned when the lexer sees a character it has no
// rule for.
type InvalidCharError struct {
	Char rune
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}

// UnexpectedCharacterError is returned when the lexer demanded one exact
// character and found another.
type UnexpectedCharacterError struct {
	Expected rune
	Actual   rune
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("expecting %q but got %q", e.Expected, e.Actual)
}

// NumberValueError is returned when a number token's text could not be
// converted to a numeric value, e.g. an out of range integer.
type NumberValueError struct {
	Literal string
}

func (e NumberValueError) Error() string {
	return fmt.Sprintf("invalid number value %q", e.Literal)
}

// UnexpectedTokenError is returned when the parser meets a token the grammar
// does not allow at that point. Expected, when set, describes what would
// have been accepted.
type UnexpectedTokenError struct {
	Token    Token
	Expected string
}

func (e UnexpectedTokenError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("expecting %s but got <%s>", e.Expected, e.Token)
	}
	return fmt.Sprintf("unexpected <%s>", e.Token)
}
