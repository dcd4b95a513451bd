package parser_test

import (
	"testing"

	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/lexer"
	"github.com/gglang-dev/gglang/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors for %q", src)
	return program
}

func TestParseFuncDecl(t *testing.T) {
	program := parseProgram(t, `fn double(n: int): int { return n * 2 }`)
	require.Len(t, program.Statements, 1)
	fn, ok := program.Statements[0].(*ast.FuncDecl)
	require.True(t, ok, "expected *ast.FuncDecl, got %T", program.Statements[0])
	assert.Equal(t, "double", fn.Name)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "n", fn.Params[0].Name)
	assert.Equal(t, "int", fn.Params[0].Type.Name)
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, "int", fn.ReturnType.Name)
	require.Len(t, fn.Body.Statements, 1)
	_, ok = fn.Body.Statements[0].(*ast.Return)
	assert.True(t, ok, "expected *ast.Return, got %T", fn.Body.Statements[0])
}

func TestParsePipeWithRepetitionModifier(t *testing.T) {
	program := parseProgram(t, `var y = 3 --> double ×3`)
	decl := program.Statements[0].(*ast.VarDecl)
	pipe, ok := decl.Value.(*ast.Pipe)
	require.True(t, ok, "expected *ast.Pipe, got %T", decl.Value)
	assert.Equal(t, "-->", pipe.Op)
	mod, ok := pipe.Right.(*ast.ModifiedExpression)
	require.True(t, ok, "expected *ast.ModifiedExpression, got %T", pipe.Right)
	require.Len(t, mod.Modifiers, 1)
	rep, ok := mod.Modifiers[0].(*ast.RepetitionModifier)
	require.True(t, ok, "expected *ast.RepetitionModifier, got %T", mod.Modifiers[0])
	assert.Equal(t, 3, rep.Count)
}

func TestParseConditionalModifier(t *testing.T) {
	program := parseProgram(t, `var y = x --> f ?(_ > 0)`)
	decl := program.Statements[0].(*ast.VarDecl)
	pipe := decl.Value.(*ast.Pipe)
	mod := pipe.Right.(*ast.ModifiedExpression)
	_, ok := mod.Modifiers[0].(*ast.ConditionalModifier)
	assert.True(t, ok, "expected *ast.ConditionalModifier, got %T", mod.Modifiers[0])
}

func TestParseClassWithSuperclass(t *testing.T) {
	program := parseProgram(t, `class B(A) { fn greet() { super.greet() } }`)
	decl := program.Statements[0].(*ast.ClassDecl)
	assert.Equal(t, "B", decl.Name)
	assert.Equal(t, "A", decl.Superclass)
	require.Len(t, decl.Body.Statements, 1)
	_, ok := decl.Body.Statements[0].(*ast.FuncDecl)
	assert.True(t, ok, "expected method to be *ast.FuncDecl, got %T", decl.Body.Statements[0])
}

func TestParseTryCatch(t *testing.T) {
	program := parseProgram(t, `try { assert(1 == 2, "nope") } catch (e) { print(e) }`)
	tc, ok := program.Statements[0].(*ast.TryCatch)
	require.True(t, ok, "expected *ast.TryCatch, got %T", program.Statements[0])
	assert.Equal(t, "e", tc.ExceptionVar)
}

func TestParseAssignmentPipe(t *testing.T) {
	program := parseProgram(t, `5 + 3 -> total`)
	ap, ok := program.Statements[0].(*ast.AssignmentPipe)
	require.True(t, ok, "expected *ast.AssignmentPipe, got %T", program.Statements[0])
	assert.Equal(t, "total", ap.Target)
}

func TestParseCompoundAssignment(t *testing.T) {
	program := parseProgram(t, `x += 1`)
	ca, ok := program.Statements[0].(*ast.CompoundAssignment)
	require.True(t, ok, "expected *ast.CompoundAssignment, got %T", program.Statements[0])
	assert.Equal(t, "+=", ca.Op)
}

func TestParseInstanceVarDecl(t *testing.T) {
	program := parseProgram(t, `class Point { fn initialize(x: int) { var @x = x } }`)
	decl := program.Statements[0].(*ast.ClassDecl)
	fn := decl.Body.Statements[0].(*ast.FuncDecl)
	_, ok := fn.Body.Statements[0].(*ast.InstanceVarDecl)
	assert.True(t, ok, "expected *ast.InstanceVarDecl, got %T", fn.Body.Statements[0])
}

func TestParseForLoop(t *testing.T) {
	program := parseProgram(t, `for item in items { print(item) }`)
	fl, ok := program.Statements[0].(*ast.ForLoop)
	require.True(t, ok, "expected *ast.ForLoop, got %T", program.Statements[0])
	assert.Equal(t, "item", fl.Var)
}
