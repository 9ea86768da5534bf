package lib

import (
	"strconv"
	"strings"
)

// Parse folds an already-lexed token sequence into an ordered list of top
// level expressions. Parsing is all-or-nothing: the first error aborts the
// call and no partial list is returned.
func Parse(tokens []Token) ([]Expression, error) {
	p := parser{reader: newSliceReader(tokens)}
	return p.scan()
}

// ParseString lexes and parses source text as a pipeline, with the lexer
// feeding tokens to the parser through a buffered channel.
func ParseString(source string) ([]Expression, error) {
	buffer := newTokenBuffer()
	p := parser{reader: buffer}
	var lexErr error = nil
	lexDone := make(chan struct{})

	go (func() {
		lexErr = lex(source, buffer.Write)
		close(lexDone)
		buffer.Done()
	})()

	expressions, err := p.scan()
	if err == nil {
		// The parser stops at the EOF token, which the lexer emits before
		// returning, so this receive completes promptly and orders the
		// lexErr write before the read. On the parse-error path lexErr is
		// never read, and the lexer may still be blocked writing tokens, so
		// waiting there is neither needed nor safe.
		<-lexDone
		err = lexErr
	}
	return expressions, err
}

type parser struct {
	reader tokenReader
}

func (p *parser) scan() ([]Expression, error) {
	expressions := []Expression{}

	for {
		if err := p.skipLayout(); err != nil {
			return nil, err
		}

		tok, done, err := p.peek()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		if tok.Type == TokenTypeLet {
			binding, err := p.scanLetBinding()
			if err != nil {
				return nil, err
			}
			expressions = append(expressions, binding)
			continue
		}

		expr, err := p.scanExpr()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)

		// A semicolon may terminate an expression statement but is not
		// required to.
		if err := p.skipLayout(); err != nil {
			return nil, err
		}
		next, done, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !done && next.Type == TokenTypeSemiColon {
			if _, _, err := p.next(); err != nil {
				return nil, err
			}
		}
	}

	return expressions, nil
}

// scanLetBinding reads "let <identifier> = <expression> ;" with the let
// token still unconsumed.
func (p *parser) scanLetBinding() (Expression, error) {
	if _, _, err := p.next(); err != nil {
		return nil, err
	}

	ident, err := p.expect(TokenTypeIdentifier, "identifier")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenTypeEquals, "'='"); err != nil {
		return nil, err
	}

	value, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenTypeSemiColon, "';'"); err != nil {
		return nil, err
	}

	return AssignmentExpression{
		Identifier: string(ident.Value),
		Value:      value,
	}, nil
}

// scanExpr reads a primary followed by any number of '+' primaries, folding
// them left-associatively. There is a single precedence level.
func (p *parser) scanExpr() (Expression, error) {
	left, err := p.scanPrimary()
	if err != nil {
		return nil, err
	}

	for {
		if err := p.skipLayout(); err != nil {
			return nil, err
		}
		opToken, done, err := p.peek()
		if err != nil {
			return nil, err
		}
		if done || opToken.Type != TokenTypePlus {
			break
		}
		if _, _, err := p.next(); err != nil {
			return nil, err
		}

		right, err := p.scanPrimary()
		if err != nil {
			return nil, err
		}

		left = InfixExpression{Left: left, Op: OperatorPlus, Right: right}
	}

	return left, nil
}

func (p *parser) scanPrimary() (Expression, error) {
	if err := p.skipLayout(); err != nil {
		return nil, err
	}
	tok, done, err := p.next()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, UnexpectedTokenError{
			Token:    Token{Type: TokenTypeEOF},
			Expected: "expression",
		}
	}

	switch tok.Type {
	case TokenTypeNumber:
		return scanNumberValue(string(tok.Value))
	case TokenTypeString:
		return ValueExpression{Value: StringValue{Value: string(tok.Value)}}, nil
	case TokenTypeIdentifier:
		return IdentifierExpression{Name: string(tok.Value)}, nil
	default:
		return nil, UnexpectedTokenError{Token: tok, Expected: "expression"}
	}
}

// scanNumberValue converts a number token's literal text. A literal with a
// decimal point becomes a 32-bit float, anything else a signed 32-bit
// integer.
func scanNumberValue(literal string) (Expression, error) {
	if strings.ContainsRune(literal, '.') {
		value, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return nil, NumberValueError{Literal: literal}
		}
		return ValueExpression{Value: FloatValue{Value: float32(value)}}, nil
	}

	value, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return nil, NumberValueError{Literal: literal}
	}
	return ValueExpression{Value: IntegerValue{Value: int32(value)}}, nil
}

// expect consumes the next significant token, which must have the given
// type.
func (p *parser) expect(typ TokenType, what string) (Token, error) {
	if err := p.skipLayout(); err != nil {
		return Token{}, err
	}
	tok, done, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if done {
		return Token{}, UnexpectedTokenError{
			Token:    Token{Type: TokenTypeEOF},
			Expected: what,
		}
	}
	if tok.Type != typ {
		return Token{}, UnexpectedTokenError{Token: tok, Expected: what}
	}
	return tok, nil
}

// skipLayout consumes whitespace and newline tokens, which are insignificant
// between tokens.
func (p *parser) skipLayout() error {
	for {
		tok, done, err := p.peek()
		if err != nil {
			return err
		}
		if done || (tok.Type != TokenTypeWhitespace && tok.Type != TokenTypeNewLine) {
			return nil
		}
		if _, _, err := p.next(); err != nil {
			return err
		}
	}
}

// peek and next treat the lexer's EOF token as end of stream so the parser
// only ever deals in significant tokens.
func (p *parser) peek() (Token, bool, error) {
	tok, done, err := p.reader.Peek()
	if err != nil || done {
		return tok, done, err
	}
	if tok.Type == TokenTypeEOF {
		return tok, true, nil
	}
	return tok, false, nil
}

func (p *parser) next() (Token, bool, error) {
	tok, done, err := p.reader.Next()
	if err != nil || done {
		return tok, done, err
	}
	if tok.Type == TokenTypeEOF {
		return tok, true, nil
	}
	return tok, false, nil
}
