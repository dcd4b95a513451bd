package parser

import (
	"fmt"

	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/lexer"
	"github.com/gglang-dev/gglang/internal/token"
)

// scanInterpolation splits an INTERP_STRING token's raw content on #{...}
// segments into alternating String literal and sub-expression parts. Brace
// depth is tracked while scanning an embedded expression so a dictionary
// literal (`#{ {"a": 1} }`) does not prematurely close the segment.
func (p *Parser) scanInterpolation(content string) ([]ast.Node, error) {
	var parts []ast.Node
	runes := []rune(content)
	i := 0
	lastEnd := 0

	for i < len(runes) {
		if runes[i] == '#' && i+1 < len(runes) && runes[i+1] == '{' {
			if i > lastEnd {
				parts = append(parts, &ast.String{Base: ast.At(p.curToken), Value: string(runes[lastEnd:i])})
			}
			start := i + 2
			depth := 1
			j := start
			for j < len(runes) && depth > 0 {
				switch runes[j] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						goto closed
					}
				}
				j++
			}
		closed:
			if depth != 0 {
				return nil, fmt.Errorf("unterminated interpolation segment in string literal")
			}
			exprSrc := string(runes[start:j])
			node, err := p.parseSubExpression(exprSrc)
			if err != nil {
				return nil, err
			}
			parts = append(parts, node)
			i = j + 1
			lastEnd = i
			continue
		}
		i++
	}
	if lastEnd < len(runes) {
		parts = append(parts, &ast.String{Base: ast.At(p.curToken), Value: string(runes[lastEnd:])})
	}
	return parts, nil
}

// parseSubExpression parses a standalone expression string (the inside of a
// #{...} interpolation segment) with its own lexer/parser pair, folding any
// errors into the outer parse.
func (p *Parser) parseSubExpression(src string) (ast.Node, error) {
	sub := New(lexer.New(src))
	node := sub.parseExpression(LOWEST)
	if errs := sub.Errors(); len(errs) > 0 {
		return nil, fmt.Errorf("in interpolated expression %q: %s", src, errs[0])
	}
	if !sub.peekTokenIs(token.EOF) {
		return nil, fmt.Errorf("unexpected trailing input %q in interpolated expression %q", sub.peekToken.Literal, src)
	}
	return node, nil
}
