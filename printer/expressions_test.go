package printer_test

import (
	"testing"

	"github.com/cwbudde/go-dws/ast"
	"github.com/cwbudde/go-dws/printer"
)

func num(v float64) *ast.Node {
	n, err := ast.NewNumericLiteral(v, 0)
	if err != nil {
		panic(err)
	}
	return n
}

func TestRenderLeaves(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want string
	}{
		{"numeric", num(42), "42"},
		{"quoted string", ast.NewStringLiteral(`"hi"`, true, 0), `"hi"`},
		{"unquoted string", ast.NewStringLiteral("hi", false, 0), `"hi"`},
		{"regex", ast.NewRegexLiteral("a.b", "gi", 0), "/a.b/gi"},
		{"true", ast.NewBooleanLiteral(true, 0), "true"},
		{"false", ast.NewBooleanLiteral(false, 0), "false"},
		{"null", ast.NewNullLiteral(0), "null"},
		{"this", ast.NewThis(0), "this"},
		{"empty expression", ast.NewEmptyExpression(0), ""},
		{"identifier", ast.NewIdentifier("foo", 0), "foo"},
	}
	p := printer.New(printer.None)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Print(tt.node); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderOperatorCompact(t *testing.T) {
	op := ast.NewOperator(ast.OpAdd, num(1), num(2), 0)
	p := printer.New(printer.None)
	if got := p.Print(op); got != "1+2" {
		t.Errorf("Print() = %q, want %q", got, "1+2")
	}
}

func TestRenderOperatorPretty(t *testing.T) {
	op := ast.NewOperator(ast.OpAdd, num(1), num(2), 0)
	p := printer.New(printer.Pretty)
	if got := p.Print(op); got != "1 + 2" {
		t.Errorf("Print() = %q, want %q", got, "1 + 2")
	}
}

func TestRenderCommaOperatorNeverLeadingSpace(t *testing.T) {
	op := ast.NewOperator(ast.OpComma, num(1), num(2), 0)

	compact := printer.New(printer.None).Print(op)
	if compact != "1,2" {
		t.Errorf("compact comma = %q, want %q", compact, "1,2")
	}
	pretty := printer.New(printer.Pretty).Print(op)
	if pretty != "1, 2" {
		t.Errorf("pretty comma = %q, want %q", pretty, "1, 2")
	}
}

func TestRenderAlphabeticOperatorsAlwaysSpaced(t *testing.T) {
	op := ast.NewOperator(ast.OpInstanceof, ast.NewIdentifier("a", 0), ast.NewIdentifier("b", 0), 0)
	if got := printer.New(printer.None).Print(op); got != "a instanceof b" {
		t.Errorf("Print() = %q, want %q", got, "a instanceof b")
	}
}

func TestRenderUnaryWordOperators(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want string
	}{
		{"delete identifier", ast.NewUnary(ast.OpDelete, ast.NewIdentifier("x", 0), 0), "delete x"},
		{"void parenthetical", ast.NewUnary(ast.OpVoid, ast.NewParenthetical(num(0), 0), 0), "void(0)"},
		{"not symbolic", ast.NewUnary(ast.OpNot, ast.NewIdentifier("x", 0), 0), "!x"},
	}
	p := printer.New(printer.None)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Print(tt.node); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderPostfix(t *testing.T) {
	post := ast.NewPostfix(ast.OpPostIncr, ast.NewIdentifier("x", 0), 0)
	if got := printer.New(printer.None).Print(post); got != "x++" {
		t.Errorf("Print() = %q, want %q", got, "x++")
	}
}

func TestRenderConditional(t *testing.T) {
	cond := ast.NewConditionalExpression(ast.NewIdentifier("c", 0), num(1), num(2), 0)
	if got := printer.New(printer.None).Print(cond); got != "c?1:2" {
		t.Errorf("compact Print() = %q, want %q", got, "c?1:2")
	}
	if got := printer.New(printer.Pretty).Print(cond); got != "c ? 1 : 2" {
		t.Errorf("pretty Print() = %q, want %q", got, "c ? 1 : 2")
	}
}

func TestRenderFunctionCallAndConstructor(t *testing.T) {
	args := ast.NewArgList(0, num(1), num(2))
	call := ast.NewFunctionCall(ast.NewIdentifier("f", 0), args, 0)
	if got := printer.New(printer.None).Print(call); got != "f(1,2)" {
		t.Errorf("Print() = %q, want %q", got, "f(1,2)")
	}

	ctor := ast.NewFunctionConstructor(ast.NewIdentifier("Foo", 0), ast.NewArgList(0), 0)
	if got := printer.New(printer.None).Print(ctor); got != "new Foo()" {
		t.Errorf("Print() = %q, want %q", got, "new Foo()")
	}
}

func TestRenderMemberExpressions(t *testing.T) {
	obj := ast.NewIdentifier("a", 0)
	static := ast.NewStaticMemberExpression(obj, ast.NewIdentifier("b", 0), 0)
	if got := printer.New(printer.None).Print(static); got != "a.b" {
		t.Errorf("Print() = %q, want %q", got, "a.b")
	}

	dyn := ast.NewDynamicMemberExpression(obj, ast.NewStringLiteral("b", false, 0), 0)
	if got := printer.New(printer.None).Print(dyn); got != `a["b"]` {
		t.Errorf("Print() = %q, want %q", got, `a["b"]`)
	}
}

func TestRenderObjectAndArrayLiterals(t *testing.T) {
	obj := ast.NewObjectLiteral(0,
		ast.NewObjectLiteralProperty(ast.NewIdentifier("foo", 0), num(1), 0),
		ast.NewObjectLiteralProperty(ast.NewStringLiteral("2bad", false, 0), num(2), 0),
	)
	if got := printer.New(printer.None).Print(obj); got != `{foo:1,"2bad":2}` {
		t.Errorf("Print() = %q, want %q", got, `{foo:1,"2bad":2}`)
	}

	arr := ast.NewArrayLiteral(0, num(1), num(2), num(3))
	if got := printer.New(printer.None).Print(arr); got != "[1,2,3]" {
		t.Errorf("Print() = %q, want %q", got, "[1,2,3]")
	}
}
