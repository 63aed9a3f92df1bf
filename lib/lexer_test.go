package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// A test helper function that just aggregates tokens into a slice for easier
// assertions.
func getTokens(input string) ([]Token, error) {
	tokens := []Token{}
	err := lex(input, func(t Token) {
		tokens = append(tokens, t)
	})
	return tokens, err
}

func requireTok(t *testing.T, actual Token, kind TokenKind, lexeme string, pos int) {
	require.Equal(t, kind, actual.Kind, "token kind")
	require.Equal(t, lexeme, actual.Lexeme, "token lexeme")
	require.Equal(t, pos, actual.Pos, "token pos")
}

func TestLexerEmpty(t *testing.T) {
	tokens, err := getTokens("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], TokenEndOfStream, "", 1)
}

func TestLexerInteger(t *testing.T) {
	tokens, err := getTokens("12345")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], TokenInteger, "12345", 1)
	require.Equal(t, int64(12345), tokens[0].Value)
	requireTok(t, tokens[1], TokenEndOfStream, "", 6)
}

func TestLexerSymbols(t *testing.T) {
	tokens, err := getTokens("+-*/()")
	require.NoError(t, err)
	require.Len(t, tokens, 7)
	for i, sym := range []string{"+", "-", "*", "/", "(", ")"} {
		requireTok(t, tokens[i], TokenSymbol, sym, i+1)
	}
	requireTok(t, tokens[6], TokenEndOfStream, "", 7)
}

func TestLexerExpression(t *testing.T) {
	tokens, err := getTokens("(12+3)*-45")
	require.NoError(t, err)
	require.Len(t, tokens, 9)
	requireTok(t, tokens[0], TokenSymbol, "(", 1)
	requireTok(t, tokens[1], TokenInteger, "12", 2)
	requireTok(t, tokens[2], TokenSymbol, "+", 4)
	requireTok(t, tokens[3], TokenInteger, "3", 5)
	requireTok(t, tokens[4], TokenSymbol, ")", 6)
	requireTok(t, tokens[5], TokenSymbol, "*", 7)
	requireTok(t, tokens[6], TokenSymbol, "-", 8)
	requireTok(t, tokens[7], TokenInteger, "45", 9)
	requireTok(t, tokens[8], TokenEndOfStream, "", 11)
}

func TestLexerSkipsWhitespace(t *testing.T) {
	tokens, err := getTokens(" 3 +\t4\n")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], TokenInteger, "3", 2)
	requireTok(t, tokens[1], TokenSymbol, "+", 4)
	requireTok(t, tokens[2], TokenInteger, "4", 6)
	requireTok(t, tokens[3], TokenEndOfStream, "", 8)
}

func TestLexerWhitespaceSplitsIntegers(t *testing.T) {
	tokens, err := getTokens("1 2")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	requireTok(t, tokens[0], TokenInteger, "1", 1)
	requireTok(t, tokens[1], TokenInteger, "2", 3)
}

func TestLexerIllegalSymbol(t *testing.T) {
	tokens, err := getTokens("1+x+2")
	require.Error(t, err)
	require.True(t, errors.Is(err, IllegalSymbol))
	require.Equal(t, "Illegal symbol in input 'x'", err.Error())

	// Lexing stops at the bad character.
	require.Len(t, tokens, 3)
	requireTok(t, tokens[2], TokenInvalid, "x", 3)
}

func TestLexerIllegalMultibyte(t *testing.T) {
	_, err := getTokens("1×2")
	require.Error(t, err)

	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	require.Equal(t, IllegalSymbol, lexErr.Kind)
	require.Equal(t, "×", lexErr.Token.Lexeme)
	require.Equal(t, 2, lexErr.Token.Pos)
}

func TestLexerLongLiteral(t *testing.T) {
	digits := "000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000042"
	tokens, err := getTokens(digits)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, digits, tokens[0].Lexeme)
	require.Equal(t, int64(42), tokens[0].Value)
}

func TestTokenize(t *testing.T) {
	stream, err := Tokenize("1+2")
	require.NoError(t, err)
	require.Equal(t, 4, stream.Len())

	stream, err = Tokenize("1 & 2")
	require.Error(t, err)
	require.Nil(t, stream)
}
