package lib

const symbols = "+-*/()"

type charInfo struct {
	ch  rune
	pos int
}

// Tokenize lexes the whole input up front. The returned stream always ends
// in exactly one TokenEndOfStream.
func Tokenize(input string) (*TokenStream, error) {
	stream := newTokenStream()
	err := lex(input, stream.write)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func lex(input string, emit func(Token)) error {
	l := newLexer(input, emit)
	return l.scan()
}

type lexer struct {
	input            []rune
	length           int
	currentCharIndex int
	tokenStartIndex  int
	emitCallback     func(Token)
}

func newLexer(input string, emit func(Token)) *lexer {
	runes := []rune(input)
	return &lexer{
		input:            runes,
		length:           len(runes),
		currentCharIndex: 0,
		tokenStartIndex:  0,
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tok Token) {
	l.emitCallback(tok)
	l.resetToken()
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.input[i], pos: i + 1}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	if ok {
		l.currentCharIndex++
	}
	return info, ok
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
	chInfo, ok := l.advance()
	if !ok {
		l.emit(Token{Kind: TokenEndOfStream, Pos: l.currentCharIndex + 1})
		return false, nil
	}
	ch := chInfo.ch

	switch {
	case ch == ' ', ch == '\t', ch == '\r', ch == '\n':
		l.resetToken()
	case isDigit(ch):
		l.scanNumber()
	case isSymbol(ch):
		l.emit(Token{Kind: TokenSymbol, Lexeme: string(ch), Pos: chInfo.pos})
	default:
		tok := Token{Kind: TokenInvalid, Lexeme: string(ch), Pos: chInfo.pos}
		l.emit(tok)
		return false, &Error{Kind: IllegalSymbol, Token: tok}
	}

	return true, nil
}

// scanNumber consumes the rest of a digit run. Literals wider than int64
// wrap around like every other integer operation.
func (l *lexer) scanNumber() {
	for {
		next, ok := l.peek(0)
		if !ok || !isDigit(next.ch) {
			break
		}
		_, _ = l.advance()
	}

	digits := l.input[l.tokenStartIndex:l.currentCharIndex]
	var value int64
	for _, d := range digits {
		value = value*10 + int64(d-'0')
	}
	l.emit(Token{
		Kind:   TokenInteger,
		Lexeme: string(digits),
		Value:  value,
		Pos:    l.tokenStartIndex + 1,
	})
}

func (l *lexer) resetToken() {
	l.tokenStartIndex = l.currentCharIndex
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSymbol(ch rune) bool {
	for _, s := range symbols {
		if ch == s {
			return true
		}
	}
	return false
}
