package lib

import "fmt"

type TokenType int

const (
	TokenTypeLet TokenType = iota
	TokenTypeFunction
	TokenTypeIdentifier
	TokenTypeString
	TokenTypeNumber
	TokenTypeWhitespace
	TokenTypeNewLine
	TokenTypeEquals
	TokenTypePlus
	TokenTypeSemiColon
	TokenTypeEOF
)

// Token is one lexical unit. Value holds the lexeme for identifier, string
// and number tokens and is nil for everything else. Number keeps the literal
// text verbatim; converting it to a numeric value is the parser's job.
type Token struct {
	Type  TokenType
	Value []rune
}

func (t TokenType) String() string {
	switch t {
	case TokenTypeLet:
		return "let"
	case TokenTypeFunction:
		return "function"
	case TokenTypeIdentifier:
		return "identifier"
	case TokenTypeString:
		return "string"
	case TokenTypeNumber:
		return "number"
	case TokenTypeWhitespace:
		return "whitespace"
	case TokenTypeNewLine:
		return "newline"
	case TokenTypeEquals:
		return "="
	case TokenTypePlus:
		return "+"
	case TokenTypeSemiColon:
		return ";"
	case TokenTypeEOF:
		return "EOF"
	default:
		return "?"
	}
}

func (t Token) String() string {
	switch t.Type {
	case TokenTypeIdentifier, TokenTypeNumber:
		return fmt.Sprintf("%s: %s", t.Type, string(t.Value))
	case TokenTypeString:
		return fmt.Sprintf("%s: %q", t.Type, string(t.Value))
	default:
		return t.Type.String()
	}
}
