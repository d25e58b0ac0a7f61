package ast_test

import (
	"testing"

	"github.com/cwbudde/go-dws/ast"
)

func statements(n int) []*ast.Node {
	out := make([]*ast.Node, n)
	for i := range out {
		out[i] = ast.NewIdentifier("x", 1)
	}
	return out
}

func TestAppendPrependInsert(t *testing.T) {
	list := ast.NewStatementList(1, statements(2)...)
	list.AppendChild(ast.NewIdentifier("tail", 1))
	if got := list.NumChildren(); got != 3 {
		t.Fatalf("expected 3 children, got %d", got)
	}

	list.PrependChild(ast.NewIdentifier("head", 1))
	if got := list.ChildAt(0).Name(); got != "head" {
		t.Fatalf("expected head first, got %q", got)
	}

	list.InsertChildBefore(ast.NewIdentifier("mid", 1), 2)
	if got := list.ChildAt(2).Name(); got != "mid" {
		t.Fatalf("expected mid at position 2, got %q", got)
	}
	if got := list.NumChildren(); got != 5 {
		t.Fatalf("expected 5 children after insert, got %d", got)
	}
}

func TestRemoveAndReplaceChildAt(t *testing.T) {
	a := ast.NewIdentifier("a", 1)
	b := ast.NewIdentifier("b", 1)
	list := ast.NewStatementList(1, a, b)

	removed := list.RemoveChildAt(0)
	if removed != a {
		t.Fatalf("expected removed node to be a, got %v", removed)
	}
	if got := list.NumChildren(); got != 1 {
		t.Fatalf("expected 1 child remaining, got %d", got)
	}

	c := ast.NewIdentifier("c", 1)
	old := list.ReplaceChildAt(0, c)
	if old != b {
		t.Fatalf("expected replaced-out node to be b, got %v", old)
	}
	if list.ChildAt(0) != c {
		t.Fatalf("expected c to occupy position 0")
	}
}

func TestChildAtOutOfRangeReturnsNil(t *testing.T) {
	list := ast.NewStatementList(1)
	if got := list.ChildAt(5); got != nil {
		t.Fatalf("expected nil for out-of-range ChildAt, got %v", got)
	}
	if got := list.RemoveChildAt(5); got != nil {
		t.Fatalf("expected nil for out-of-range RemoveChildAt, got %v", got)
	}
}

func TestAbsentChildSlotDistinctFromEmptyList(t *testing.T) {
	ifNode := ast.NewIf(
		ast.NewBooleanLiteral(true, 1),
		ast.NewStatementList(1),
		nil,
		1,
	)
	if !ast.IsAbsent(ifNode.Else()) {
		t.Fatal("expected absent else slot")
	}
	if ifNode.Then().NumChildren() != 0 {
		t.Fatal("expected empty (not absent) then-block")
	}
}
