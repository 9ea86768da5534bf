package lib

import (
	"errors"
	"time"
)

const TOKEN_BUF_SIZE = 100

var TokenReadTimeout = 1 * time.Second

type peekResult struct {
	tok  Token
	done bool
	err  error
}

// tokenBuffer carries tokens from a lexer goroutine to the parser. It holds
// at most one peeked token; Done signals that the lexer has finished.
type tokenBuffer struct {
	tokChan      chan Token
	doneChan     chan struct{}
	peeked       *peekResult
	doneReceived bool
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokChan:      make(chan Token, TOKEN_BUF_SIZE),
		doneChan:     make(chan struct{}, 1),
		peeked:       nil,
		doneReceived: false,
	}
}

func (tb *tokenBuffer) Next() (tok Token, done bool, err error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done, res.err
	}

	// Once the done signal has arrived, drain any tokens still queued
	// before reporting done. The writer has stopped, so a non-blocking
	// receive is exact here.
	if tb.doneReceived {
		select {
		case tok := <-tb.tokChan:
			return tok, false, nil
		default:
			return Token{}, true, nil
		}
	}

	select {
	case tok := <-tb.tokChan:
		return tok, false, nil
	case <-tb.doneChan:
		tb.doneReceived = true
		return tb.Next()
	case <-time.After(TokenReadTimeout):
		return Token{}, false, errors.New("timed out waiting for next token")
	}
}

func (tb *tokenBuffer) Peek() (Token, bool, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.done, tb.peeked.err
	}
	tok, done, err := tb.Next()
	tb.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.tokChan <- tok
}

func (tb *tokenBuffer) Done() {
	tb.doneChan <- struct{}{}
}
