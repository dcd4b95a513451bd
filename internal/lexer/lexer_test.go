package lexer_test

import (
	"testing"

	"github.com/gglang-dev/gglang/internal/lexer"
	"github.com/gglang-dev/gglang/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestNextTokenOperators(t *testing.T) {
	input := `--> ~~> -> × ? @ += -= *= /=`
	want := []token.Kind{
		token.ARROW, token.COERCE, token.ASSIGN_PIPE, token.TIMES_MOD,
		token.QUESTION, token.AT, token.PLUS_EQ, token.MINUS_EQ,
		token.STAR_EQ, token.SLASH_EQ, token.EOF,
	}

	l := lexer.New(input)
	for i, k := range want {
		tok := l.NextToken()
		assert.Equalf(t, k, tok.Kind, "token %d (literal %q)", i, tok.Literal)
	}
}

func TestNextTokenProgram(t *testing.T) {
	input := `fn double(n: int): int { return n * 2 }`
	want := []token.Kind{
		token.FN, token.IDENT, token.LPAREN, token.IDENT, token.COLON, token.IDENT, token.RPAREN,
		token.COLON, token.IDENT, token.LBRACE,
		token.RETURN, token.IDENT, token.STAR, token.INT,
		token.RBRACE, token.EOF,
	}

	l := lexer.New(input)
	for i, k := range want {
		tok := l.NextToken()
		assert.Equalf(t, k, tok.Kind, "token %d", i)
	}
}

func TestInterpolatedStringIsOneToken(t *testing.T) {
	l := lexer.New(`i"hello #{name}"`)
	tok := l.NextToken()
	assert.Equal(t, token.INTERP_STRING, tok.Kind)
	assert.Equal(t, "hello #{name}", tok.Literal)
	eof := l.NextToken()
	assert.Equal(t, token.EOF, eof.Kind)
}

func TestFloatLiteralDoesNotConfuseDot(t *testing.T) {
	l := lexer.New(`3.5 a.b`)
	kinds := []token.Kind{token.FLOAT, token.IDENT, token.DOT, token.IDENT, token.EOF}
	for i, k := range kinds {
		tok := l.NextToken()
		assert.Equalf(t, k, tok.Kind, "token %d", i)
	}
}

func TestLineCommentsAreSkipped(t *testing.T) {
	l := lexer.New("1 // a comment\n2")
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, "1", first.Literal)
	assert.Equal(t, "2", second.Literal)
}
