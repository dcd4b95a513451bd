package parser

import (
	"strconv"

	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/token"
)

// parsePipe handles both the plain (`-->`) and coercion (`~~>`) pipe
// operators; the right-hand step is parsed by parsePipeStep rather than the
// generic expression loop, since modifiers (×N, ?cond) are not ordinary
// infix operators.
func (p *Parser) parsePipe(left ast.Node) ast.Node {
	tok := p.curToken
	op := p.curToken.Literal
	p.nextToken()
	right := p.parsePipeStep()
	return &ast.Pipe{Base: ast.At(tok), Left: left, Op: op, Right: right}
}

// parsePipeStep parses one pipeline step: a TypedPipeTarget (`name: Type`),
// or a base expression optionally annotated with ×N / ?cond modifiers. The
// base expression is parsed at PREFIX precedence so calls, property access,
// and array indexing apply but the step does not swallow a following
// modifier sigil or a further pipe segment.
func (p *Parser) parsePipeStep() ast.Node {
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
		tok := p.curToken
		name := p.curToken.Literal
		p.nextToken() // consume IDENT, curToken now COLON
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		typ := &ast.Type{Base: ast.At(p.curToken), Name: p.curToken.Literal}
		return &ast.TypedPipeTarget{Base: ast.At(tok), Name: name, Type: typ}
	}

	stepBase := p.parseExpression(PREFIX)

	var modifiers []ast.Modifier
	for p.peekTokenIs(token.TIMES_MOD) || p.peekTokenIs(token.QUESTION) {
		if p.peekTokenIs(token.TIMES_MOD) {
			p.nextToken()
			tok := p.curToken
			if !p.expectPeek(token.INT) {
				return nil
			}
			n, err := strconv.Atoi(p.curToken.Literal)
			if err != nil {
				p.errorf("invalid repetition count %q", p.curToken.Literal)
				return nil
			}
			modifiers = append(modifiers, &ast.RepetitionModifier{Base: ast.At(tok), Count: n})
			continue
		}
		p.nextToken() // consume QUESTION
		tok := p.curToken
		p.nextToken()
		cond := p.parseExpression(PIPE)
		modifiers = append(modifiers, &ast.ConditionalModifier{Base: ast.At(tok), Condition: cond})
	}

	if len(modifiers) == 0 {
		return stepBase
	}
	return &ast.ModifiedExpression{Base: ast.At(stepBase.Tok()), Expression: stepBase, Modifiers: modifiers}
}

// parseAssignmentPipe handles the `->` assignment-pipe operator, which
// binds Value (the already-parsed left side) to a brand-new name rather
// than invoking an expression.
func (p *Parser) parseAssignmentPipe(left ast.Node) ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	var typ *ast.Type
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		typ = &ast.Type{Base: ast.At(p.curToken), Name: p.curToken.Literal}
	}

	return &ast.AssignmentPipe{Base: ast.At(tok), Target: name, Value: left, Type: typ}
}
