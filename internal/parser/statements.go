package parser

import (
	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/token"
)

// parseStatement dispatches on the leading token kind of a statement.
func (p *Parser) parseStatement() ast.Node {
	switch p.curToken.Kind {
	case token.FN:
		return p.parseFuncDecl()
	case token.VAR:
		return p.parseVarDecl()
	case token.CONST:
		return p.parseConstDecl()
	case token.CLASS:
		return p.parseClassDecl()
	case token.FOR:
		return p.parseForLoop()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.TRY:
		return p.parseTryCatch()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseType() *ast.Type {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.Type{Base: base(p), Name: p.curToken.Literal}
}

// parseVarDecl parses `var name [: Type] [= expr]`. An `@` right after `var`
// routes to an instance-scoped field declaration instead of a local one.
func (p *Parser) parseVarDecl() ast.Node {
	tok := p.curToken
	isInstance := p.peekTokenIs(token.AT)
	if isInstance {
		p.nextToken()
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	var typ *ast.Type
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		typ = p.parseType()
	}

	var value ast.Node
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		value = p.parseExpression(LOWEST)
	}

	if isInstance {
		return &ast.InstanceVarDecl{Base: ast.At(tok), Name: name, Type: typ, Value: value}
	}
	return &ast.VarDecl{Base: ast.At(tok), Name: name, Type: typ, Value: value}
}

// parseConstDecl parses `const name = expr`, or `const @name = expr` for an
// instance-scoped constant (spec §4.5: identical semantics to InstanceVarDecl).
func (p *Parser) parseConstDecl() ast.Node {
	tok := p.curToken
	isInstance := p.peekTokenIs(token.AT)
	if isInstance {
		p.nextToken()
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)

	if isInstance {
		return &ast.InstanceConstDecl{Base: ast.At(tok), Name: name, Value: value}
	}
	return &ast.ConstDecl{Base: ast.At(tok), Name: name, Value: value}
}

func (p *Parser) parseFuncDecl() ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParams()

	var retType *ast.Type
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		retType = p.parseType()
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.FuncDecl{Base: ast.At(tok), Name: name, Params: params, ReturnType: retType, Body: body}
}

// parseParams expects curToken to be LPAREN on entry and consumes through
// the matching RPAREN.
func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseParam())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParam())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	tok := p.curToken
	isRef := false
	if p.curTokenIs(token.AMP) {
		isRef = true
		p.nextToken()
	}
	name := p.curToken.Literal

	var typ *ast.Type
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		typ = p.parseType()
	}
	return &ast.Param{Base: ast.At(tok), Name: name, Type: typ, IsRef: isRef}
}

// parseBlock expects curToken to be LBRACE on entry; on return curToken is
// the matching RBRACE, matching ParseProgram's end-of-statement convention.
func (p *Parser) parseBlock() *ast.Block {
	tok := p.curToken
	block := &ast.Block{Base: ast.At(tok)}
	p.nextToken()
	for p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
		for p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	}
	return block
}

func (p *Parser) parseClassDecl() ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	superclass := ""
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		superclass = p.curToken.Literal
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.ClassDecl{Base: ast.At(tok), Name: name, Superclass: superclass, Body: body}
}

func (p *Parser) parseForLoop() ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	varName := p.curToken.Literal
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	iterable := p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.ForLoop{Base: ast.At(tok), Var: varName, Iterable: iterable, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Node {
	tok := p.curToken
	var value ast.Node
	if !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		value = p.parseExpression(LOWEST)
	}
	return &ast.Return{Base: ast.At(tok), Value: value}
}

func (p *Parser) parseTryCatch() ast.Node {
	tok := p.curToken
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	tryBlock := p.parseBlock()
	if !p.expectPeek(token.CATCH) {
		return nil
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	exceptionVar := p.curToken.Literal
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	catchBlock := p.parseBlock()
	return &ast.TryCatch{Base: ast.At(tok), TryBlock: tryBlock, ExceptionVar: exceptionVar, CatchBlock: catchBlock}
}

var compoundOps = map[token.Kind]bool{
	token.PLUS_EQ:  true,
	token.MINUS_EQ: true,
	token.STAR_EQ:  true,
	token.SLASH_EQ: true,
}

// parseExpressionStatement parses a bare expression, promoting it to an
// Assignment or CompoundAssignment if followed by `=` or a `+=`-style
// operator — these are statement-level forms, not expression infix operators.
func (p *Parser) parseExpressionStatement() ast.Node {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		tok := p.curToken
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.Assignment{Base: ast.At(tok), Target: expr, Value: value}
	}

	if compoundOps[p.peekToken.Kind] {
		p.nextToken()
		tok := p.curToken
		op := p.curToken.Literal
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.CompoundAssignment{Base: ast.At(tok), Target: expr, Op: op, Value: value}
	}

	return expr
}
