// Package printer renders an *ast.Node tree back to ECMAScript-3 source
// text, mirroring go-dws's pkg/printer (Options/Style, printer.New(...)
// .Print(node)) but built around a single render/renderStatement/
// renderBlock traversal contract instead of go-dws's per-AST-struct
// Print methods.
package printer

// Options is a combinable bitset controlling rendering mode. The zero
// value, None, is compact mode: minimum whitespace, no line catchup.
type Options uint8

const (
	// None renders compact: minimum whitespace, no lineno catchup.
	None Options = 0
	// Pretty adds spacing around operators and control-statement
	// parens, two-space indentation, newlines between statements, and
	// always-present braces around single-statement bodies.
	Pretty Options = 1 << iota

	// MaintainLineno emits catchup newlines so the rendered output's
	// line numbers track each node's source Lineno(). Orthogonal to
	// Pretty; combine as Pretty|MaintainLineno.
	MaintainLineno
)

// Has reports whether flag is set in o.
func (o Options) Has(flag Options) bool { return o&flag != 0 }
