package evaluator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gglang-dev/gglang/internal/evaluator"
	"github.com/gglang-dev/gglang/internal/lexer"
	"github.com/gglang-dev/gglang/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, evaluator.Value) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors for %q", src)

	var out bytes.Buffer
	ev := evaluator.New()
	ev.Stdout = &out
	result := ev.Run(program)
	return out.String(), result
}

func TestMainScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "arithmetic precedence",
			src:  `fn main(): int { var x = 10 + 2 * 3; print(x); return 0 }`,
			want: "16\n",
		},
		{
			name: "pipe with repetition modifier",
			src:  `fn double(n: int): int { return n * 2 } fn main(): int { var y = 3 --> double ×3; print(y); return 0 }`,
			want: "24\n",
		},
		{
			name: "coercion pipe",
			src:  `fn plus_one(n: int): int { return n + 1 } fn main(): int { var r = "5" ~~> plus_one(_); print(r); return 0 }`,
			want: "6\n",
		},
		{
			name: "single inheritance and super",
			src:  `class A { fn greet() { print("A") } } class B(A) { fn greet() { super.greet(); print("B") } } fn main(): int { var b = B(); b.greet(); return 0 }`,
			want: "A\nB\n",
		},
		{
			name: "try/catch around a failed assertion",
			src:  `fn main(): int { try { assert(1 == 2, "nope") } catch (e) { print(e) }; return 0 }`,
			want: "nope\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, result := run(t, tc.src)
			if re, ok := result.(*evaluator.RuntimeError); ok {
				t.Fatalf("unexpected runtime error: %s", re.Inspect())
			}
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestConditionalModifierSkipsWhenFalsy(t *testing.T) {
	src := `fn double(n: int): int { return n * 2 } fn main(): int { var y = 3 --> double ×3 ?(_ > 100); print(y); return 0 }`
	out, result := run(t, src)
	if re, ok := result.(*evaluator.RuntimeError); ok {
		t.Fatalf("unexpected runtime error: %s", re.Inspect())
	}
	assert.Equal(t, "3\n", out)
}

func TestRuntimeErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind evaluator.ErrorKind
	}{
		{"divide by zero", `fn main(): int { var x = 1 / 0; return 0 }`, evaluator.DivideByZero},
		{"undefined name", `fn main(): int { print(nope); return 0 }`, evaluator.NameUndefined},
		{"index out of range", `fn main(): int { var xs = [1, 2]; print(xs[5]); return 0 }`, evaluator.IndexOutOfRange},
		{"not callable", `fn main(): int { var x = 5; x(); return 0 }`, evaluator.NotCallable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, result := run(t, tc.src)
			re, ok := result.(*evaluator.RuntimeError)
			require.True(t, ok, "expected a runtime error, got %T (%v)", result, result)
			assert.Equal(t, tc.kind, re.Kind, "message: %s", re.Message)
		})
	}
}

func TestInterpolatedStringEmbedsExpressions(t *testing.T) {
	src := `fn main(): int { var name = "world"; print(i"hello #{name}, #{1 + 2}"); return 0 }`
	out, result := run(t, src)
	if re, ok := result.(*evaluator.RuntimeError); ok {
		t.Fatalf("unexpected runtime error: %s", re.Inspect())
	}
	assert.Equal(t, "hello world, 3", strings.TrimSpace(out))
}

func TestListAppendPopMutateInPlace(t *testing.T) {
	src := `fn main(): int { var xs = [1, 2]; append(xs, 3); print(xs); pop(xs); print(xs); return 0 }`
	out, result := run(t, src)
	if re, ok := result.(*evaluator.RuntimeError); ok {
		t.Fatalf("unexpected runtime error: %s", re.Inspect())
	}
	assert.Equal(t, "[1, 2, 3]\n[1, 2]\n", out)
}
