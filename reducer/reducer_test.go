package reducer_test

import (
	"testing"

	"github.com/cwbudde/go-dws/ast"
	"github.com/cwbudde/go-dws/printer"
	"github.com/cwbudde/go-dws/reducer"
)

func num(v float64) *ast.Node {
	n, err := ast.NewNumericLiteral(v, 0)
	if err != nil {
		panic(err)
	}
	return n
}
func bool_(v bool) *ast.Node  { return ast.NewBooleanLiteral(v, 0) }

func callStmt(name string) *ast.Node {
	return ast.NewFunctionCall(ast.NewIdentifier(name, 0), ast.NewArgList(0), 0)
}

func print(n *ast.Node) string {
	return printer.New(printer.None).Print(n)
}

func TestReduceStatementListDropsConstantStatement(t *testing.T) {
	list := ast.NewStatementList(0, num(1), callStmt("work"))
	got, _, err := reducer.ReduceWithStats(list)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "work();" {
		t.Errorf("Print() = %q, want %q", print(got), "work();")
	}
}

func TestReduceLogicalOrTruthyLeft(t *testing.T) {
	n := ast.NewOperator(ast.OpLogicalOr, num(1), callStmt("sideEffect"), 0)
	got, stats, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if got.Kind() != ast.KindNumericLiteral {
		t.Errorf("got kind %v, want NumericLiteral", got.Kind())
	}
	if stats.LogicalShortCircuits == 0 {
		t.Error("expected LogicalShortCircuits to be incremented")
	}
}

func TestReduceLogicalAndFalsyLeft(t *testing.T) {
	n := ast.NewOperator(ast.OpLogicalAnd, bool_(false), callStmt("sideEffect"), 0)
	got, _, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "false" {
		t.Errorf("Print() = %q, want %q", print(got), "false")
	}
}

func TestReduceCommaDropsConstantLeft(t *testing.T) {
	n := ast.NewOperator(ast.OpComma, num(1), ast.NewIdentifier("x", 0), 0)
	got, _, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "x" {
		t.Errorf("Print() = %q, want %q", print(got), "x")
	}
}

func TestReduceConditionalFoldsOnConstantCondition(t *testing.T) {
	truthy := ast.NewConditionalExpression(bool_(true), num(1), num(2), 0)
	got, _, err := reducer.ReduceWithStats(truthy)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "1" {
		t.Errorf("Print() = %q, want %q", print(got), "1")
	}

	falsy := ast.NewConditionalExpression(bool_(false), num(1), num(2), 0)
	got, _, err = reducer.ReduceWithStats(falsy)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "2" {
		t.Errorf("Print() = %q, want %q", print(got), "2")
	}
}

func TestReduceUnaryNotFoldsConstantOperand(t *testing.T) {
	n := ast.NewUnary(ast.OpNot, bool_(true), 0)
	got, _, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "false" {
		t.Errorf("Print() = %q, want %q", print(got), "false")
	}
}

// TestReduceIfTruthyConditionKeepsThen checks that a constant-truthy
// condition collapses an If to its then branch.
func TestReduceIfTruthyConditionKeepsThen(t *testing.T) {
	ifNode := ast.NewIf(bool_(true), ast.NewStatementList(0, callStmt("work")), nil, 0)
	got, _, err := reducer.ReduceWithStats(ifNode)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "work();" {
		t.Errorf("Print() = %q, want %q", print(got), "work();")
	}
}

func TestReduceIfFalsyConditionDropsThen(t *testing.T) {
	ifNode := ast.NewIf(bool_(false), ast.NewStatementList(0, callStmt("work")), nil, 0)
	got, _, err := reducer.ReduceWithStats(ifNode)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil (absent)", got)
	}
}

func TestReduceIfThenlessAndElselessDegradesToCondition(t *testing.T) {
	ifNode := ast.NewIf(callStmt("probe"), ast.NewStatementList(0), nil, 0)
	got, _, err := reducer.ReduceWithStats(ifNode)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "probe()" {
		t.Errorf("Print() = %q, want %q", print(got), "probe()")
	}
}

// TestReduceIfEmptyThenFlipsToNegatedCondition checks that
// `if(cond){}else{work();}` reduces to a negated-condition If whose then
// is the former else, and that the moved block still prints with braces.
func TestReduceIfEmptyThenFlipsToNegatedCondition(t *testing.T) {
	ifNode := ast.NewIf(
		ast.NewIdentifier("cond", 0),
		ast.NewStatementList(0),
		ast.NewStatementList(0, callStmt("work")),
		0,
	)
	got, stats, err := reducer.ReduceWithStats(ifNode)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if stats.IfBranchesEliminated == 0 {
		t.Error("expected IfBranchesEliminated to be incremented")
	}
	want := "if(!(cond)){work();}"
	if print(got) != want {
		t.Errorf("Print() = %q, want %q", print(got), want)
	}
}

func TestReduceFunctionCallStubsBagOfHolding(t *testing.T) {
	n := ast.NewFunctionCall(ast.NewIdentifier("bagofholding", 0), ast.NewArgList(0), 0)
	got, stats, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "false" {
		t.Errorf("Print() = %q, want %q", print(got), "false")
	}
	if stats.BagOfHoldingStubbed != 1 {
		t.Errorf("BagOfHoldingStubbed = %d, want 1", stats.BagOfHoldingStubbed)
	}
}

func TestReduceFunctionCallLeavesOtherCallsAlone(t *testing.T) {
	n := ast.NewFunctionCall(ast.NewIdentifier("doWork", 0), ast.NewArgList(0), 0)
	got, _, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "doWork()" {
		t.Errorf("Print() = %q, want %q", print(got), "doWork()")
	}
}

func TestReducePropertyKeyCanonicalizesIdentifierLikeString(t *testing.T) {
	obj := ast.NewObjectLiteral(0, ast.NewObjectLiteralProperty(ast.NewStringLiteral("name", true, 0), num(1), 0))
	got, stats, err := reducer.ReduceWithStats(obj)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "{name:1}" {
		t.Errorf("Print() = %q, want %q", print(got), "{name:1}")
	}
	if stats.PropertyKeysCanonicalized != 1 {
		t.Errorf("PropertyKeysCanonicalized = %d, want 1", stats.PropertyKeysCanonicalized)
	}
}

func TestReducePropertyKeyLeavesNonIdentifierStringAlone(t *testing.T) {
	obj := ast.NewObjectLiteral(0, ast.NewObjectLiteralProperty(ast.NewStringLiteral(`"not an ident"`, true, 0), num(1), 0))
	got, _, err := reducer.ReduceWithStats(obj)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != `{"not an ident":1}` {
		t.Errorf("Print() = %q, want %q", print(got), `{"not an ident":1}`)
	}
}

func TestReduceMemberAccessCanonicalizesToStaticForm(t *testing.T) {
	n := ast.NewDynamicMemberExpression(ast.NewIdentifier("obj", 0), ast.NewStringLiteral("name", true, 0), 0)
	got, stats, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "obj.name" {
		t.Errorf("Print() = %q, want %q", print(got), "obj.name")
	}
	if stats.MemberAccessCanonicalized != 1 {
		t.Errorf("MemberAccessCanonicalized = %d, want 1", stats.MemberAccessCanonicalized)
	}
}

func TestReduceMemberAccessLeavesComputedKeyAlone(t *testing.T) {
	n := ast.NewDynamicMemberExpression(ast.NewIdentifier("obj", 0), ast.NewIdentifier("key", 0), 0)
	got, _, err := reducer.ReduceWithStats(n)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if print(got) != "obj[key]" {
		t.Errorf("Print() = %q, want %q", print(got), "obj[key]")
	}
}

// TestReduceIdempotent asserts that reducing an already-reduced tree is
// a no-op (up to structural equality).
func TestReduceIdempotent(t *testing.T) {
	tree := ast.NewStatementList(0,
		ast.NewIf(bool_(true), ast.NewStatementList(0, callStmt("a")), nil, 0),
		callStmt("b"),
	)
	once, _, err := reducer.ReduceWithStats(tree)
	if err != nil {
		t.Fatalf("first Reduce() error = %v", err)
	}
	clone := once.Clone()
	twice, _, err := reducer.ReduceWithStats(clone)
	if err != nil {
		t.Fatalf("second Reduce() error = %v", err)
	}
	if !once.Equal(twice) {
		t.Errorf("reduce not idempotent: once=%q twice=%q", print(once), print(twice))
	}
}

func TestReduceToFixpointCollapsesNestedFolding(t *testing.T) {
	// An empty-then If flips to a negated-condition If on the first pass;
	// further passes leave that form unchanged, so iteration stops there.
	inner := ast.NewIf(
		ast.NewIdentifier("cond", 0),
		ast.NewStatementList(0),
		ast.NewStatementList(0, callStmt("work")),
		0,
	)
	got, _, err := reducer.ReduceToFixpoint(inner)
	if err != nil {
		t.Fatalf("ReduceToFixpoint() error = %v", err)
	}
	want := "if(!(cond)){work();}"
	if print(got) != want {
		t.Errorf("Print() = %q, want %q", print(got), want)
	}
}
