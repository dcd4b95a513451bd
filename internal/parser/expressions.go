package parser

import (
	"strconv"

	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/token"
)

// base captures the parser's current token as an ast.Base, for embedding
// into freshly-constructed nodes.
func base(p *Parser) ast.Base { return ast.At(p.curToken) }

// parseExpression is the Pratt-parser entry point: find a prefix handler
// for curToken, then keep extending the result with infix handlers as long
// as the next operator binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Node {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.errorf("no prefix parse function for %s ('%s')", p.curToken.Kind, p.curToken.Literal)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseVariable() ast.Node {
	return &ast.Variable{Base: base(p), Name: p.curToken.Literal}
}

func (p *Parser) parseThis() ast.Node {
	return &ast.Variable{Base: base(p), Name: "this"}
}

func (p *Parser) parseSuper() ast.Node {
	return &ast.Super{Base: base(p)}
}

func (p *Parser) parseInteger() ast.Node {
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf("could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.Integer{Base: base(p), Value: v}
}

func (p *Parser) parseFloat() ast.Node {
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf("could not parse %q as float", p.curToken.Literal)
		return nil
	}
	return &ast.Float{Base: base(p), Value: v}
}

func (p *Parser) parseString() ast.Node {
	return &ast.String{Base: base(p), Value: p.curToken.Literal}
}

func (p *Parser) parseInterpolatedString() ast.Node {
	parts, err := p.scanInterpolation(p.curToken.Literal)
	if err != nil {
		p.errorf("%s", err.Error())
		return nil
	}
	return &ast.InterpolatedString{Base: base(p), Parts: parts}
}

func (p *Parser) parseBoolean() ast.Node {
	return &ast.Variable{Base: base(p), Name: p.curToken.Literal}
}

// parsePrefixExpression handles unary `-x` and `not x`, both desugared so
// the evaluator needs no separate unary-operator case.
func (p *Parser) parsePrefixExpression() ast.Node {
	tok := p.curToken
	op := p.curToken.Literal
	p.nextToken()
	right := p.parseExpression(PREFIX)
	switch op {
	case "-":
		return &ast.BinOp{Base: ast.At(tok), Left: &ast.Integer{Base: ast.At(tok), Value: 0}, Op: "-", Right: right}
	case "not":
		return &ast.Ternary{
			Base: ast.At(tok),
			Cond: right,
			Then: &ast.Variable{Base: ast.At(tok), Name: "false"},
			Else: &ast.Variable{Base: ast.At(tok), Name: "true"},
		}
	}
	p.errorf("unknown prefix operator %q", op)
	return nil
}

func (p *Parser) parseCreateReference() ast.Node {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(PREFIX)
	return &ast.CreateReference{Base: ast.At(tok), Value: value}
}

func (p *Parser) parseGroupedExpression() ast.Node {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseArrayLiteral() ast.Node {
	tok := p.curToken
	elements := p.parseExpressionList(token.RBRACKET)
	return &ast.ArrayLiteral{Base: ast.At(tok), Elements: elements}
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Node {
	var list []ast.Node
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseDictionary() ast.Node {
	tok := p.curToken
	dict := &ast.Dictionary{Base: ast.At(tok)}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		dict.Pairs = append(dict.Pairs, &ast.KeyValuePair{Base: ast.At(tok), Key: key, Value: value})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return dict
}

func (p *Parser) parseInstanceVarExpr() ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.InstanceVar{Base: ast.At(tok), Name: p.curToken.Literal}
}

func (p *Parser) parseBinOp(left ast.Node) ast.Node {
	tok := p.curToken
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinOp{Base: ast.At(tok), Left: left, Op: op, Right: right}
}

// parseLogical desugars `and`/`or` to Ternary, since the AST has no separate
// short-circuit boolean node: `a and b` is `a ? b : a`, `a or b` is `a ? a : b`.
func (p *Parser) parseLogical(left ast.Node) ast.Node {
	tok := p.curToken
	op := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if op == "and" {
		return &ast.Ternary{Base: ast.At(tok), Cond: left, Then: right, Else: left}
	}
	return &ast.Ternary{Base: ast.At(tok), Cond: left, Then: left, Else: right}
}

func (p *Parser) parseTernary(cond ast.Node) ast.Node {
	tok := p.curToken
	p.nextToken()
	then := p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	els := p.parseExpression(TERNARY)
	return &ast.Ternary{Base: ast.At(tok), Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseCallExpression(callee ast.Node) ast.Node {
	tok := p.curToken
	args := p.parseExpressionList(token.RPAREN)
	return &ast.Call{Base: ast.At(tok), Callee: callee, Args: args}
}

func (p *Parser) parsePropertyOrMethodCall(left ast.Node) ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	prop := &ast.PropertyAccess{Base: ast.At(tok), Object: left, Name: p.curToken.Literal}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args := p.parseExpressionList(token.RPAREN)
		return &ast.MethodCall{Base: ast.At(tok), Callee: prop, Args: args}
	}
	return prop
}

func (p *Parser) parseArrayAccess(left ast.Node) ast.Node {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ArrayAccess{Base: ast.At(tok), Array: left, Index: index}
}
