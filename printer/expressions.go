package printer

import (
	"strings"

	"github.com/cwbudde/go-dws/ast"
	"github.com/cwbudde/go-dws/numfmt"
)

func (p *Printer) renderLeaf(b *strings.Builder, n *ast.Node) {
	switch n.Kind() {
	case ast.KindNumericLiteral:
		p.write(b, numfmt.Format(n.Value()))
	case ast.KindStringLiteral:
		if n.Quoted() {
			p.write(b, n.StringValue())
		} else {
			p.write(b, "\""+n.StringValue()+"\"")
		}
	case ast.KindRegexLiteral:
		p.write(b, "/"+n.RegexBody()+"/"+n.RegexFlags())
	case ast.KindBooleanLiteral:
		if n.BoolValue() {
			p.write(b, "true")
		} else {
			p.write(b, "false")
		}
	case ast.KindNullLiteral:
		p.write(b, "null")
	case ast.KindThis:
		p.write(b, "this")
	case ast.KindEmptyExpression:
		// renders as the empty string
	case ast.KindIdentifier:
		p.write(b, n.Name())
	}
}

// wordUnaries require a separating space before their operand unless the
// operand is itself a Parenthetical, whose leading "(" already disambiguates
// the token boundary.
var wordUnaries = map[string]bool{
	ast.OpDelete: true,
	ast.OpVoid:   true,
	ast.OpTypeof: true,
}

func (p *Printer) renderUnary(b *strings.Builder, n *ast.Node, indent int) {
	op := n.Op()
	p.write(b, op)
	operand := n.Operand()
	if wordUnaries[op] && (operand == nil || operand.Kind() != ast.KindParenthetical) {
		p.write(b, " ")
	}
	p.render(b, operand, indent)
}

func (p *Printer) renderOperator(b *strings.Builder, n *ast.Node, indent int) {
	op := n.Op()
	p.render(b, n.Left(), indent)
	p.writeOpSpaced(b, op)
	p.render(b, n.Right(), indent)
}

// writeOpSpaced writes a binary/assignment operator with the following
// spacing rules: alphabetic operators (in, instanceof) always need
// surrounding spaces; the comma operator never gets a leading space and
// only a trailing one in pretty mode; every other operator gets
// surrounding spaces in pretty mode and none in compact mode.
func (p *Printer) writeOpSpaced(b *strings.Builder, op string) {
	pretty := p.opts.Has(Pretty)
	alphabetic := ast.IsAlphabeticOperator(op)

	if op == ast.OpComma {
		p.write(b, op)
		if pretty {
			p.write(b, " ")
		}
		return
	}

	if pretty || alphabetic {
		p.write(b, " ")
	}
	p.write(b, op)
	if pretty || alphabetic {
		p.write(b, " ")
	}
}

func (p *Printer) renderConditional(b *strings.Builder, n *ast.Node, indent int) {
	p.render(b, n.Cond(), indent)
	if p.opts.Has(Pretty) {
		p.write(b, " ? ")
	} else {
		p.write(b, "?")
	}
	p.render(b, n.Then(), indent)
	if p.opts.Has(Pretty) {
		p.write(b, " : ")
	} else {
		p.write(b, ":")
	}
	p.render(b, n.Else(), indent)
}

func (p *Printer) renderArgList(b *strings.Builder, n *ast.Node, indent int) {
	p.write(b, "(")
	items := n.Items()
	for i, item := range items {
		if i > 0 {
			p.writeOpSpaced(b, ast.OpComma)
		}
		p.render(b, item, indent)
	}
	p.write(b, ")")
}

func (p *Printer) renderObjectLiteral(b *strings.Builder, n *ast.Node, indent int) {
	props := n.Properties()
	p.write(b, "{")
	for i, prop := range props {
		if i > 0 {
			p.writeOpSpaced(b, ast.OpComma)
		}
		p.render(b, prop, indent)
	}
	p.write(b, "}")
}

func (p *Printer) renderArrayLiteral(b *strings.Builder, n *ast.Node, indent int) {
	elems := n.Elements()
	p.write(b, "[")
	for i, e := range elems {
		if i > 0 {
			p.writeOpSpaced(b, ast.OpComma)
		}
		p.render(b, e, indent)
	}
	p.write(b, "]")
}
