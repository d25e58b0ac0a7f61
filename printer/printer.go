package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-dws/ast"
)

// Printer holds the small mutable state the traversal contract needs:
// the current logical line number, advanced by every newline emitted,
// and the (immutable per print) option flags. Indentation level is
// threaded as a traversal parameter, not state.
type Printer struct {
	opts Options
	line int
}

// New builds a Printer with the given option bitset.
func New(opts Options) *Printer {
	return &Printer{opts: opts, line: 1}
}

// Print renders n and returns the resulting source text. Each call
// starts from a fresh logical-line counter (1), matching go-dws's
// pkg/printer.Printer.Print, which is likewise safe to call repeatedly
// on the same *Printer.
func (p *Printer) Print(n *ast.Node) string {
	p.line = 1
	var b strings.Builder
	if n == nil {
		return ""
	}
	p.renderRoot(&b, n)
	return b.String()
}

// Fprint is the io.Writer convenience form, mirroring the
// FormatBytes/FormatFile helpers go-dws's cmd/dwscript/cmd/fmt.go layers
// on top of its own printer.Print.
func Fprint(w io.Writer, n *ast.Node, opts Options) (int, error) {
	p := New(opts)
	return fmt.Fprint(w, p.Print(n))
}

// write appends s to b and advances the logical line counter by the
// number of newlines s contains, so that maintain-lineno catchup stays
// correct regardless of which render path produced the newline (an
// explicit catchup, or an indentation newline in pretty mode).
func (p *Printer) write(b *strings.Builder, s string) {
	b.WriteString(s)
	p.line += strings.Count(s, "\n")
}

// catchup emits newlines to advance the logical line counter up to n's
// Lineno, when maintain-lineno is active and n carries a known (nonzero)
// line number ahead of the current position.
func (p *Printer) catchup(b *strings.Builder, n *ast.Node) {
	if !p.opts.Has(MaintainLineno) || n == nil {
		return
	}
	target := n.Lineno()
	if target == 0 || target <= p.line {
		return
	}
	p.write(b, strings.Repeat("\n", target-p.line))
}

func indentSpaces(indent int) string {
	return strings.Repeat("  ", indent)
}

// renderRoot renders a Program or top-level StatementList as the whole
// output: the statement separator logic from renderIndentedStatement
// applies, but the very first statement never gets a leading newline of
// its own (there is nothing before it to separate from). A statement-kind
// root renders in statement form; an expression root renders on its own,
// without a trailing `;`.
func (p *Printer) renderRoot(b *strings.Builder, n *ast.Node) {
	switch n.Kind() {
	case ast.KindProgram, ast.KindStatementList:
		p.renderList(b, n.Statements(), 0)
	case ast.KindIf, ast.KindWhile, ast.KindDoWhile, ast.KindForLoop, ast.KindForIn,
		ast.KindWith, ast.KindTry, ast.KindSwitch, ast.KindFunctionDeclaration,
		ast.KindLabel, ast.KindCaseClause, ast.KindDefaultClause,
		ast.KindVarDeclaration, ast.KindStatementWithExpression:
		p.renderStatement(b, n, 0)
	default:
		p.render(b, n, 0)
	}
}

// renderList renders a sequence of statements at indent, applying
// catchup/separator rules between them, with the leading separator of
// the first statement suppressed.
func (p *Printer) renderList(b *strings.Builder, stmts []*ast.Node, indent int) {
	for i, s := range stmts {
		p.renderIndentedStatement(b, s, indent, i == 0)
		p.renderStatement(b, s, indent)
	}
}

// renderIndentedStatement implements the statement separator contract: a
// newline plus two-space-per-level indentation in pretty mode (skipped
// before the very first statement of a sequence), or lineno catchup
// followed by indentation if maintain-lineno is active and a catchup
// newline was actually emitted.
func (p *Printer) renderIndentedStatement(b *strings.Builder, n *ast.Node, indent int, first bool) {
	if p.opts.Has(MaintainLineno) {
		before := p.line
		p.catchup(b, n)
		if p.line > before && p.opts.Has(Pretty) {
			p.write(b, indentSpaces(indent))
		}
		return
	}
	if p.opts.Has(Pretty) {
		if !first {
			p.write(b, "\n")
		}
		p.write(b, indentSpaces(indent))
	}
}

// renderBlock renders n (a StatementList occupying a block position):
// brace-omission for a single statement in compact mode unless must is
// set or n itself demands braces (ForceBraces), `;` for an empty
// non-mandatory block, or full `{...}` otherwise.
func (p *Printer) renderBlock(b *strings.Builder, must bool, n *ast.Node, indent int) {
	if ast.IsAbsent(n) {
		return
	}
	must = must || n.ForceBraces()
	stmts := n.Statements()
	if !must && !p.opts.Has(Pretty) && len(stmts) == 1 {
		p.renderStatement(b, stmts[0], indent)
		return
	}
	if !must && len(stmts) == 0 {
		p.write(b, ";")
		return
	}
	p.write(b, "{")
	for _, s := range stmts {
		p.renderIndentedStatement(b, s, indent+1, false)
		p.renderStatement(b, s, indent+1)
	}
	if p.opts.Has(Pretty) {
		p.write(b, "\n"+indentSpaces(indent))
	}
	p.write(b, "}")
}

// render emits n's own textual form (no surrounding indentation or
// trailing newline) by dispatching on Kind.
func (p *Printer) render(b *strings.Builder, n *ast.Node, indent int) {
	if ast.IsAbsent(n) {
		return
	}
	switch n.Kind() {
	case ast.KindNumericLiteral, ast.KindStringLiteral, ast.KindRegexLiteral,
		ast.KindBooleanLiteral, ast.KindNullLiteral, ast.KindThis,
		ast.KindEmptyExpression, ast.KindIdentifier:
		p.renderLeaf(b, n)
	case ast.KindParenthetical:
		p.write(b, "(")
		p.render(b, n.Inner(), indent)
		p.write(b, ")")
	case ast.KindUnary:
		p.renderUnary(b, n, indent)
	case ast.KindPostfix:
		p.render(b, n.Operand(), indent)
		p.write(b, n.Op())
	case ast.KindOperator:
		p.renderOperator(b, n, indent)
	case ast.KindAssignment:
		p.render(b, n.Left(), indent)
		p.writeOpSpaced(b, n.Op())
		p.render(b, n.Right(), indent)
	case ast.KindConditionalExpression:
		p.renderConditional(b, n, indent)
	case ast.KindFunctionCall:
		p.render(b, n.Callee(), indent)
		p.renderArgList(b, n.Args(), indent)
	case ast.KindFunctionConstructor:
		p.write(b, "new ")
		p.render(b, n.Callee(), indent)
		p.renderArgList(b, n.Args(), indent)
	case ast.KindStaticMemberExpression:
		p.render(b, n.Object(), indent)
		p.write(b, ".")
		p.render(b, n.Property(), indent)
	case ast.KindDynamicMemberExpression:
		p.render(b, n.Object(), indent)
		p.write(b, "[")
		p.render(b, n.Subscript(), indent)
		p.write(b, "]")
	case ast.KindObjectLiteral:
		p.renderObjectLiteral(b, n, indent)
	case ast.KindObjectLiteralProperty:
		p.render(b, n.Key(), indent)
		p.write(b, ":")
		if p.opts.Has(Pretty) {
			p.write(b, " ")
		}
		p.render(b, n.PropValue(), indent)
	case ast.KindArrayLiteral:
		p.renderArrayLiteral(b, n, indent)
	case ast.KindArgList:
		p.renderArgList(b, n, indent)
	case ast.KindFunctionDeclaration, ast.KindFunctionExpression:
		p.renderFunction(b, n, indent)
	case ast.KindVarDeclaration:
		p.renderVarDeclaration(b, n, indent)
	case ast.KindIf:
		p.renderIf(b, n, indent)
	case ast.KindWhile:
		p.renderWhile(b, n, indent)
	case ast.KindDoWhile:
		p.renderDoWhile(b, n, indent)
	case ast.KindForLoop:
		p.renderForLoop(b, n, indent)
	case ast.KindForIn:
		p.renderForIn(b, n, indent)
	case ast.KindWith:
		p.renderWith(b, n, indent)
	case ast.KindTry:
		p.renderTry(b, n, indent)
	case ast.KindSwitch:
		p.renderSwitch(b, n, indent)
	case ast.KindCaseClause:
		p.write(b, "case ")
		p.render(b, n.CaseExpr(), indent)
		p.write(b, ":")
	case ast.KindDefaultClause:
		p.write(b, "default:")
	case ast.KindStatementWithExpression:
		p.renderStatementWithExpression(b, n, indent)
	case ast.KindLabel:
		p.render(b, n.LabelIdent(), indent)
		p.write(b, ":")
		if p.opts.Has(Pretty) {
			p.write(b, " ")
		}
		p.renderStatement(b, n.LabelStatement(), indent)
	case ast.KindProgram, ast.KindStatementList:
		p.renderList(b, n.Statements(), indent)
	default:
		panic(fmt.Sprintf("printer: unhandled kind %s", n.Kind()))
	}
}
