package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireTok(t *testing.T, actual Token, typ TokenType, value string) {
	require.Equal(t, typ, actual.Type, "token type")
	require.Equal(t, value, string(actual.Value), "token value")
}

func TestLexerEmptyInput(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], TokenTypeEOF, "")
}

func TestLexerSpaceAndTab(t *testing.T) {
	tokens, err := Tokenize(" \t")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	requireTok(t, tokens[0], TokenTypeWhitespace, "")
	requireTok(t, tokens[1], TokenTypeWhitespace, "")
	requireTok(t, tokens[2], TokenTypeEOF, "")
}

func TestLexerStrings(t *testing.T) {
	tokens, err := Tokenize("\"wow\" \"this\" \"string\"")
	require.NoError(t, err)
	require.Len(t, tokens, 6)
	requireTok(t, tokens[0], TokenTypeString, "wow")
	requireTok(t, tokens[1], TokenTypeWhitespace, "")
	requireTok(t, tokens[2], TokenTypeString, "this")
	requireTok(t, tokens[3], TokenTypeWhitespace, "")
	requireTok(t, tokens[4], TokenTypeString, "string")
	requireTok(t, tokens[5], TokenTypeEOF, "")
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := Tokenize("\"wow this is a string")
	require.ErrorIs(t, err, ErrUnexpectedEndOfInput)
}

func TestLexerIntegers(t *testing.T) {
	tokens, err := Tokenize("1 2 3 45")
	require.NoError(t, err)
	require.Len(t, tokens, 8)
	requireTok(t, tokens[0], TokenTypeNumber, "1")
	requireTok(t, tokens[1], TokenTypeWhitespace, "")
	requireTok(t, tokens[2], TokenTypeNumber, "2")
	requireTok(t, tokens[3], TokenTypeWhitespace, "")
	requireTok(t, tokens[4], TokenTypeNumber, "3")
	requireTok(t, tokens[5], TokenTypeWhitespace, "")
	requireTok(t, tokens[6], TokenTypeNumber, "45")
	requireTok(t, tokens[7], TokenTypeEOF, "")
}

func TestLexerFloat(t *testing.T) {
	tokens, err := Tokenize("1.21")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], TokenTypeNumber, "1.21")
	requireTok(t, tokens[1], TokenTypeEOF, "")
}

func TestLexerFloatLookalike(t *testing.T) {
	_, err := Tokenize("1.1.1")
	var invalidChar InvalidCharError
	require.ErrorAs(t, err, &invalidChar)
	require.Equal(t, '.', invalidChar.Char)
}

func TestLexerLetBinding(t *testing.T) {
	tokens, err := Tokenize("let someValue = 10;")
	require.NoError(t, err)
	require.Len(t, tokens, 9)
	requireTok(t, tokens[0], TokenTypeLet, "")
	requireTok(t, tokens[1], TokenTypeWhitespace, "")
	requireTok(t, tokens[2], TokenTypeIdentifier, "someValue")
	requireTok(t, tokens[3], TokenTypeWhitespace, "")
	requireTok(t, tokens[4], TokenTypeEquals, "")
	requireTok(t, tokens[5], TokenTypeWhitespace, "")
	requireTok(t, tokens[6], TokenTypeNumber, "10")
	requireTok(t, tokens[7], TokenTypeSemiColon, "")
	requireTok(t, tokens[8], TokenTypeEOF, "")
}

func TestLexerFunctionKeyword(t *testing.T) {
	tokens, err := Tokenize("function foo")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], TokenTypeFunction, "")
	requireTok(t, tokens[1], TokenTypeWhitespace, "")
	requireTok(t, tokens[2], TokenTypeIdentifier, "foo")
	requireTok(t, tokens[3], TokenTypeEOF, "")
}

func TestLexerKeywordPrefixIsIdentifier(t *testing.T) {
	tokens, err := Tokenize("letter")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], TokenTypeIdentifier, "letter")
	requireTok(t, tokens[1], TokenTypeEOF, "")
}

func TestLexerNewLines(t *testing.T) {
	tokens, err := Tokenize("1\n2")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], TokenTypeNumber, "1")
	requireTok(t, tokens[1], TokenTypeNewLine, "")
	requireTok(t, tokens[2], TokenTypeNumber, "2")
	requireTok(t, tokens[3], TokenTypeEOF, "")
}

func TestLexerPlusAndEquals(t *testing.T) {
	tokens, err := Tokenize("a=b+c;")
	require.NoError(t, err)
	require.Len(t, tokens, 7)
	requireTok(t, tokens[0], TokenTypeIdentifier, "a")
	requireTok(t, tokens[1], TokenTypeEquals, "")
	requireTok(t, tokens[2], TokenTypeIdentifier, "b")
	requireTok(t, tokens[3], TokenTypePlus, "")
	requireTok(t, tokens[4], TokenTypeIdentifier, "c")
	requireTok(t, tokens[5], TokenTypeSemiColon, "")
	requireTok(t, tokens[6], TokenTypeEOF, "")
}

func TestLexerInvalidChar(t *testing.T) {
	_, err := Tokenize("!")
	var invalidChar InvalidCharError
	require.ErrorAs(t, err, &invalidChar)
	require.Equal(t, '!', invalidChar.Char)
}

func TestLexerSingleEOFAlwaysLast(t *testing.T) {
	inputs := []string{
		"",
		" \t\n",
		"let someValue = 10;",
		"\"a\" \"b\"",
		"1 + 2 + 3",
		"function f",
	}

	for _, input := range inputs {
		tokens, err := Tokenize(input)
		require.NoError(t, err, input)
		require.NotEmpty(t, tokens, input)

		eofCount := 0
		for _, tok := range tokens {
			if tok.Type == TokenTypeEOF {
				eofCount++
			}
		}
		require.Equal(t, 1, eofCount, input)
		require.Equal(t, TokenTypeEOF, tokens[len(tokens)-1].Type, input)
	}
}
