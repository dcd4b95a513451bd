package config

// Version is the current gglang version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.1.0"

const SourceFileExt = ".gg"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".gg"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// MaxEvalDepth bounds Eval's recursion depth, turning runaway recursive
// GGLang programs into a reportable runtime error instead of a Go stack
// overflow.
const MaxEvalDepth = 10000

// Built-in function names.
const (
	PrintFuncName  = "print"
	LenFuncName    = "len"
	AppendFuncName = "append"
	PopFuncName    = "pop"
	RemoveFuncName = "remove"
	TypeFuncName   = "type"
	InputFuncName  = "input"
	AssertFuncName = "assert"
)

// PrimitiveTypeNames are the coercible primitive type names the `~~>`
// coercion pipe and typed declarations recognize (spec §4.2, §4.6); each
// also names a built-in conversion function of the same name.
var PrimitiveTypeNames = map[string]bool{
	"int":   true,
	"float": true,
	"str":   true,
	"bool":  true,
}
