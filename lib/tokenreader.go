package lib

type tokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}

// sliceReader reads an already-materialized token sequence. An EOF token,
// when present, marks the end just like running out of elements does.
type sliceReader struct {
	tokens []Token
	pos    int
}

func newSliceReader(tokens []Token) *sliceReader {
	return &sliceReader{tokens: tokens, pos: 0}
}

func (r *sliceReader) Next() (Token, bool, error) {
	tok, done, err := r.Peek()
	if !done {
		r.pos++
	}
	return tok, done, err
}

func (r *sliceReader) Peek() (Token, bool, error) {
	if r.pos >= len(r.tokens) {
		return Token{}, true, nil
	}
	tok := r.tokens[r.pos]
	if tok.Type == TokenTypeEOF {
		return Token{}, true, nil
	}
	return tok, false, nil
}
