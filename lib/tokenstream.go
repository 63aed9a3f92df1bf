package lib

// TokenStream is the lexer's output: an append-only token list read through
// a single cursor. Each call to Tokenize gets its own stream.
type TokenStream struct {
	tokens []Token
	cur    int
}

func newTokenStream() *TokenStream {
	return &TokenStream{tokens: []Token{}}
}

func (ts *TokenStream) write(tok Token) {
	ts.tokens = append(ts.tokens, tok)
}

// Next returns the current token and moves past it. Once the end of the
// stream is reached it keeps returning the same TokenEndOfStream.
func (ts *TokenStream) Next() Token {
	tok := ts.Peek()
	if tok.Kind != TokenEndOfStream && ts.cur < len(ts.tokens) {
		ts.cur++
	}
	return tok
}

// Peek returns the current token without moving the cursor.
func (ts *TokenStream) Peek() Token {
	if ts.cur >= len(ts.tokens) {
		return Token{Kind: TokenEndOfStream}
	}
	return ts.tokens[ts.cur]
}

// Reset moves the cursor back to the first token.
func (ts *TokenStream) Reset() {
	ts.cur = 0
}

func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

func (ts *TokenStream) Tokens() []Token {
	out := make([]Token, len(ts.tokens))
	copy(out, ts.tokens)
	return out
}
