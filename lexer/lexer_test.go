package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant/token"
)

func allTokens(src string) []token.Token {
	lx := New(src)
	var toks []token.Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestFragment(t *testing.T) {
	toks := allTokens("Hello, world!")
	require.Equal(t, token.Fragment, toks[0].Type)
	require.Equal(t, "Hello,", toks[0].Literal)
	require.Equal(t, token.Whitespace, toks[1].Type)
	require.Equal(t, token.Fragment, toks[2].Type)
	require.Equal(t, "world", toks[2].Literal)
	require.Equal(t, token.Bang, toks[3].Type)
}

func TestPunctuation(t *testing.T) {
	toks := allTokens("{|}")
	require.Equal(t, []token.Type{token.LBrace, token.Pipe, token.RBrace, token.EOF}, typesOf(toks))
}

func TestEscapes(t *testing.T) {
	toks := allTokens(`\n\t\x41A`)
	require.Equal(t, token.Escape, toks[0].Type)
	require.Equal(t, "\n", toks[0].Literal)
	require.Equal(t, "\t", toks[1].Literal)
	require.Equal(t, "A", toks[2].Literal)
	require.Equal(t, "A", toks[3].Literal)
}

func TestStringLiteral(t *testing.T) {
	toks := allTokens(`'it''s here'`)
	require.Equal(t, token.String, toks[0].Type)
	require.Equal(t, "it's here", toks[0].Literal)
}

func TestUnterminatedString(t *testing.T) {
	toks := allTokens(`'oops`)
	require.Equal(t, token.UnterminatedString, toks[0].Type)
}

func TestNumbers(t *testing.T) {
	toks := allTokens(`42 -7 3.14 -0.5`)
	require.Equal(t, token.Integer, toks[0].Type)
	require.Equal(t, "42", toks[0].Literal)
	require.Equal(t, token.Integer, toks[2].Type)
	require.Equal(t, "-7", toks[2].Literal)
	require.Equal(t, token.Float, toks[4].Type)
	require.Equal(t, "3.14", toks[4].Literal)
	require.Equal(t, token.Float, toks[6].Type)
	require.Equal(t, "-0.5", toks[6].Literal)
}

func TestMinusInFragmentWithoutDigit(t *testing.T) {
	toks := allTokens("a-b")
	require.Equal(t, token.Fragment, toks[0].Type)
	require.Equal(t, "a-b", toks[0].Literal)
}

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tk := range toks {
		out[i] = tk.Type
	}
	return out
}
