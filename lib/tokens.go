package lib

type TokenKind int

const (
	TokenInteger TokenKind = iota
	TokenSymbol
	TokenEndOfStream
	TokenInvalid
)

var tokenKindNames = [...]string{"INTEGER", "SYMBOL", "EOS", "INVALID"}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "?"
}

// Token is one lexeme of the input. Value is only meaningful for
// TokenInteger. Pos is the 1-based column of the first character.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Value  int64
	Pos    int
}

func (t Token) isSymbol(sym string) bool {
	return t.Kind == TokenSymbol && t.Lexeme == sym
}
