package printer

import (
	"strings"

	"github.com/cwbudde/go-dws/ast"
)

// renderStatement emits n's form when it occupies a statement position:
// a trailing `;` for most Expression variants and VarDeclaration (unless
// it is an iterator declaration), nothing extra for the compound
// statement kinds (If, While, ...) which already terminate themselves,
// and delegation to render for everything else.
func (p *Printer) renderStatement(b *strings.Builder, n *ast.Node, indent int) {
	if ast.IsAbsent(n) {
		return
	}
	switch n.Kind() {
	case ast.KindIf, ast.KindWhile, ast.KindDoWhile, ast.KindForLoop, ast.KindForIn,
		ast.KindWith, ast.KindTry, ast.KindSwitch, ast.KindFunctionDeclaration,
		ast.KindLabel, ast.KindCaseClause, ast.KindDefaultClause:
		p.render(b, n, indent)
	case ast.KindVarDeclaration:
		p.render(b, n, indent)
		if !n.Iterator() {
			p.write(b, ";")
		}
	case ast.KindStatementWithExpression:
		p.render(b, n, indent)
		p.write(b, ";")
	default:
		p.render(b, n, indent)
		p.write(b, ";")
	}
}

// openControlParen writes keyword's opening parenthesis, adding a space
// before it in pretty mode ("if (", "while (", "for (") and none in
// compact mode ("if(", "while(", "for(").
func (p *Printer) openControlParen(b *strings.Builder) {
	if p.opts.Has(Pretty) {
		p.write(b, " (")
	} else {
		p.write(b, "(")
	}
}

func (p *Printer) renderIf(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "if")
	p.openControlParen(b)
	p.render(b, n.Cond(), indent)
	p.write(b, ")")

	then := n.Then()
	els := n.Else()
	must := p.opts.Has(Pretty) || then.NumChildren() == 0 || !ast.IsAbsent(els)

	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.renderBlock(b, must, then, indent)

	if ast.IsAbsent(els) {
		return
	}
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.write(b, "else")
	if els.Kind() == ast.KindIf {
		p.write(b, " ")
		p.renderStatement(b, els, indent)
		return
	}

	var tmp strings.Builder
	p.renderBlock(&tmp, false, els, indent)
	text := tmp.String()
	if len(text) > 0 && text[0] != '{' && text[0] != ' ' {
		p.write(b, " ")
	}
	b.WriteString(text) // already counted via the tmp-buffer writes above
}

func (p *Printer) renderWhile(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "while")
	p.openControlParen(b)
	p.render(b, n.Cond(), indent)
	p.write(b, ")")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.renderBlock(b, p.opts.Has(Pretty), n.Body(), indent)
}

func (p *Printer) renderDoWhile(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "do")

	var tmp strings.Builder
	p.renderBlock(&tmp, p.opts.Has(Pretty), n.Body(), indent)
	text := tmp.String()
	if p.opts.Has(Pretty) || (len(text) > 0 && text[0] != '{') {
		p.write(b, " ")
	}
	b.WriteString(text)

	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.write(b, "while")
	p.openControlParen(b)
	p.render(b, n.DoWhileCond(), indent)
	p.write(b, ");")
}

func (p *Printer) renderForLoop(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "for")
	p.openControlParen(b)
	p.render(b, n.Init(), indent)
	p.write(b, ";")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.render(b, n.ForCond(), indent)
	p.write(b, ";")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.render(b, n.Update(), indent)
	p.write(b, ")")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.renderBlock(b, p.opts.Has(Pretty), n.ForBody(), indent)
}

func (p *Printer) renderForIn(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "for")
	p.openControlParen(b)
	p.render(b, n.Lhs(), indent)
	p.write(b, " in ")
	p.render(b, n.Rhs(), indent)
	p.write(b, ")")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.renderBlock(b, p.opts.Has(Pretty), n.Body(), indent)
}

func (p *Printer) renderWith(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "with")
	p.openControlParen(b)
	p.render(b, n.Object(), indent)
	p.write(b, ")")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.renderBlock(b, p.opts.Has(Pretty), n.Body(), indent)
}

func (p *Printer) renderTry(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "try")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.renderBlock(b, true, n.TryBlock(), indent)

	if catchBlock := n.CatchBlock(); !ast.IsAbsent(catchBlock) {
		if p.opts.Has(Pretty) {
			p.write(b, " ")
		}
		p.write(b, "catch")
		p.openControlParen(b)
		p.render(b, n.CatchParam(), indent)
		p.write(b, ")")
		if p.opts.Has(Pretty) {
			p.write(b, " ")
		}
		p.renderBlock(b, true, catchBlock, indent)
	}

	if finallyBlock := n.FinallyBlock(); !ast.IsAbsent(finallyBlock) {
		if p.opts.Has(Pretty) {
			p.write(b, " ")
		}
		p.write(b, "finally")
		if p.opts.Has(Pretty) {
			p.write(b, " ")
		}
		p.renderBlock(b, true, finallyBlock, indent)
	}
}

func (p *Printer) renderSwitch(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "switch")
	p.openControlParen(b)
	p.render(b, n.Discriminant(), indent)
	p.write(b, ")")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.write(b, "{")

	stmts := n.SwitchBody().Statements()
	clauseIndent := indent + 1
	for i, s := range stmts {
		lvl := clauseIndent + 1
		if s.Kind() == ast.KindCaseClause || s.Kind() == ast.KindDefaultClause {
			lvl = clauseIndent
		}
		p.renderIndentedStatement(b, s, lvl, i == 0)
		p.renderStatement(b, s, lvl)
	}
	if p.opts.Has(Pretty) && len(stmts) > 0 {
		p.write(b, "\n"+indentSpaces(indent))
	}
	p.write(b, "}")
}

func (p *Printer) renderStatementWithExpression(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, n.StatementKind().String())
	if operand := n.Expr(); !ast.IsAbsent(operand) {
		p.write(b, " ")
		p.render(b, operand, indent)
	}
}

func (p *Printer) renderVarDeclaration(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "var ")
	for i, decl := range n.Declarations() {
		if i > 0 {
			p.writeOpSpaced(b, ast.OpComma)
		}
		p.render(b, decl, indent)
	}
}

func (p *Printer) renderFunction(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "function")
	if name := n.FunctionName(); !ast.IsAbsent(name) {
		p.write(b, " ")
		p.render(b, name, indent)
	}
	p.write(b, "(")
	for i, param := range n.Params().Items() {
		if i > 0 {
			p.writeOpSpaced(b, ast.OpComma)
		}
		p.render(b, param, indent)
	}
	p.write(b, ")")
	if p.opts.Has(Pretty) {
		p.write(b, " ")
	}
	p.renderBlock(b, true, n.FunctionBody(), indent)
}
