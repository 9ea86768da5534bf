package lib

import "unicode"

// Tokenize scans source text into an ordered token sequence ending in
// exactly one EOF token. Lexing is all-or-nothing: the first error aborts
// the call and no partial token list is returned.
func Tokenize(source string) ([]Token, error) {
	tokens := []Token{}
	err := lex(source, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func lex(source string, emit func(Token)) error {
	l := newLexer(source, emit)
	return l.scan()
}

type lexer struct {
	src    []rune
	length int
	pos    int
	emit   func(Token)
}

func newLexer(source string, emit func(Token)) *lexer {
	runes := []rune(source)
	return &lexer{
		src:    runes,
		length: len(runes),
		pos:    0,
		emit:   emit,
	}
}

func (l *lexer) peek() (rune, bool) {
	if l.pos >= l.length {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) advance() (rune, bool) {
	ch, ok := l.peek()
	if ok {
		l.pos++
	}
	return ch, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	ch, ok := l.peek()
	if !ok {
		l.emit(Token{Type: TokenTypeEOF})
		return false, nil
	}

	switch {
	case ch == ' ' || ch == '\t':
		l.advance()
		l.emit(Token{Type: TokenTypeWhitespace})
	case ch == '\n':
		l.advance()
		l.emit(Token{Type: TokenTypeNewLine})
	case ch == '=':
		l.advance()
		l.emit(Token{Type: TokenTypeEquals})
	case ch == '+':
		l.advance()
		l.emit(Token{Type: TokenTypePlus})
	case ch == ';':
		l.advance()
		l.emit(Token{Type: TokenTypeSemiColon})
	case ch == '"':
		if err := l.scanString(); err != nil {
			return false, err
		}
	case isDigit(ch):
		if err := l.scanNumber(); err != nil {
			return false, err
		}
	case isLetter(ch):
		l.scanWord()
	default:
		return false, InvalidCharError{Char: ch}
	}

	return true, nil
}

// scanString reads a double-quoted literal. The contents are taken verbatim;
// there are no escape sequences.
func (l *lexer) scanString() error {
	if err := l.expect('"'); err != nil {
		return err
	}
	contents := l.takeWhile(func(c rune) bool { return c != '"' })
	if err := l.expect('"'); err != nil {
		return err
	}
	l.emit(Token{Type: TokenTypeString, Value: contents})
	return nil
}

// scanNumber reads a digit run, optionally followed by a single '.' and a
// further digit run. A second '.' is left in place for the next dispatch,
// which rejects it as an invalid character.
func (l *lexer) scanNumber() error {
	digits := l.takeWhile(isDigit)

	if ch, ok := l.peek(); ok && ch == '.' {
		l.advance()
		digits = append(digits, '.')
		digits = append(digits, l.takeWhile(isDigit)...)
	}

	if len(digits) == 0 {
		return ErrUnexpectedEndOfInput
	}
	l.emit(Token{Type: TokenTypeNumber, Value: digits})
	return nil
}

// scanWord reads a maximal alphanumeric run and checks the completed word
// against the reserved keywords. No prefix matching.
func (l *lexer) scanWord() {
	word := l.takeWhile(isAlphanumeric)

	switch string(word) {
	case "let":
		l.emit(Token{Type: TokenTypeLet})
	case "function":
		l.emit(Token{Type: TokenTypeFunction})
	default:
		l.emit(Token{Type: TokenTypeIdentifier, Value: word})
	}
}

func (l *lexer) expect(want rune) error {
	ch, ok := l.advance()
	if !ok {
		return ErrUnexpectedEndOfInput
	}
	if ch != want {
		return UnexpectedCharacterError{Expected: want, Actual: ch}
	}
	return nil
}

func (l *lexer) takeWhile(predicate func(rune) bool) []rune {
	taken := []rune{}
	for {
		ch, ok := l.peek()
		if !ok || !predicate(ch) {
			break
		}
		l.advance()
		taken = append(taken, ch)
	}
	return taken
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isAlphanumeric(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
