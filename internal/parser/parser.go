// Package parser turns a token stream from internal/lexer into the AST
// node shapes internal/evaluator consumes.
package parser

import (
	"fmt"

	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/lexer"
	"github.com/gglang-dev/gglang/internal/token"
)

// precedence levels, lowest binding power first.
const (
	_ int = iota
	LOWEST
	PIPE      // --> ~~>
	TERNARY   // ?:
	LOGIC_OR  // or
	LOGIC_AND // and
	EQUALITY  // == !=
	COMPARISON
	SUM    // + -
	PRODUCT // * /
	PREFIX // -x, not x, &x
	CALL   // f(x), obj.field, obj[x]
)

var precedences = map[token.Kind]int{
	token.ARROW:       PIPE,
	token.COERCE:      PIPE,
	token.ASSIGN_PIPE: PIPE,
	token.QUESTION:    TERNARY,
	token.OR:          LOGIC_OR,
	token.AND:         LOGIC_AND,
	token.EQ:          EQUALITY,
	token.NEQ:         EQUALITY,
	token.LT:          COMPARISON,
	token.GT:          COMPARISON,
	token.LE:          COMPARISON,
	token.GE:          COMPARISON,
	token.PLUS:        SUM,
	token.MINUS:       SUM,
	token.STAR:        PRODUCT,
	token.SLASH:       PRODUCT,
	token.LPAREN:      CALL,
	token.DOT:         CALL,
	token.LBRACKET:    CALL,
}

type (
	prefixParseFn func() ast.Node
	infixParseFn  func(left ast.Node) ast.Node
)

// Parser is a straightforward Pratt (precedence-climbing) parser: a
// prefixParseFn per token kind that can start an expression, an
// infixParseFn per token kind that can continue one, and curToken/peekToken
// lookahead maintained by nextToken.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Kind]prefixParseFn{
		token.IDENT:         p.parseVariable,
		token.INT:           p.parseInteger,
		token.FLOAT:         p.parseFloat,
		token.STRING:        p.parseString,
		token.INTERP_STRING: p.parseInterpolatedString,
		token.TRUE:          p.parseBoolean,
		token.FALSE:         p.parseBoolean,
		token.MINUS:         p.parsePrefixExpression,
		token.NOT:           p.parsePrefixExpression,
		token.AMP:           p.parseCreateReference,
		token.LPAREN:        p.parseGroupedExpression,
		token.LBRACKET:      p.parseArrayLiteral,
		token.LBRACE:        p.parseDictionary,
		token.AT:            p.parseInstanceVarExpr,
		token.THIS:          p.parseThis,
		token.SUPER:         p.parseSuper,
	}

	p.infixParseFns = map[token.Kind]infixParseFn{
		token.PLUS:     p.parseBinOp,
		token.MINUS:    p.parseBinOp,
		token.STAR:     p.parseBinOp,
		token.SLASH:    p.parseBinOp,
		token.EQ:       p.parseBinOp,
		token.NEQ:      p.parseBinOp,
		token.LT:       p.parseBinOp,
		token.GT:       p.parseBinOp,
		token.LE:       p.parseBinOp,
		token.GE:       p.parseBinOp,
		token.AND:      p.parseLogical,
		token.OR:       p.parseLogical,
		token.QUESTION: p.parseTernary,
		token.ARROW:       p.parsePipe,
		token.COERCE:      p.parsePipe,
		token.ASSIGN_PIPE: p.parseAssignmentPipe,
		token.LPAREN:   p.parseCallExpression,
		token.DOT:      p.parsePropertyOrMethodCall,
		token.LBRACKET: p.parseArrayAccess,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%s (line %d, column %d)", msg, p.curToken.Line, p.curToken.Column))
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekToken.Kind == k }

// expectPeek advances only if peekToken matches k, recording an error otherwise.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.errorf("expected next token to be %s, got %s ('%s') instead", k, p.peekToken.Kind, p.peekToken.Literal)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the whole token stream into a Program node.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Token = p.curToken

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
		for p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	}
	return program
}
