// Package tests runs whole GGLang programs end-to-end (lex → parse → eval)
// against the golden output fixtures in testdata/programs.yaml, the way
// stable-metrics' check_test.go drives its suite off a YAML fixture file.
package tests

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gglang-dev/gglang/internal/evaluator"
	"github.com/gglang-dev/gglang/internal/lexer"
	"github.com/gglang-dev/gglang/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type programCase struct {
	Name string `yaml:"name"`
	Src  string `yaml:"src"`
	Want string `yaml:"want"`
}

func loadCases(t *testing.T) []programCase {
	t.Helper()
	data, err := os.ReadFile("testdata/programs.yaml")
	if err != nil {
		t.Fatalf("reading testdata/programs.yaml: %v", err)
	}
	var cases []programCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing testdata/programs.yaml: %v", err)
	}
	return cases
}

func TestPrograms(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			l := lexer.New(tc.Src)
			p := parser.New(l)
			program := p.ParseProgram()
			require.Empty(t, p.Errors(), "parser errors")

			var out bytes.Buffer
			ev := evaluator.New()
			ev.Stdout = &out

			result := ev.Run(program)
			if re, ok := result.(*evaluator.RuntimeError); ok {
				t.Fatalf("runtime error: %s", re.Inspect())
			}

			got := strings.TrimRight(out.String(), "\n")
			want := strings.TrimRight(tc.Want, "\n")
			assert.Equal(t, want, got)
		})
	}
}
