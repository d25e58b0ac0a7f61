// Package reducer implements a bottom-up local tree rewriter: constant
// folding of logical/conditional operators, dead-branch elimination in
// if, empty-block removal, and member-access canonicalization. go-dws has
// no analogue (it never optimizes its own DWScript AST before
// interpreting it), so this package is modeled on the same "stateless
// function over a tree, returns a replacement" shape as the sibling
// printer package rather than grounded on a direct go-dws source file.
package reducer

import (
	"github.com/cwbudde/go-dws/ast"
)

// variadic marks the Kinds whose children list the reducer may shrink
// (dropping a child that reduces to absent) rather than merely replace
// in place (fixed-arity Kinds keep their slot count; a child that
// reduces to absent is stored back as the absent sentinel).
var variadic = map[ast.Kind]bool{
	ast.KindProgram:        true,
	ast.KindStatementList:  true,
	ast.KindArgList:        true,
	ast.KindObjectLiteral:  true,
	ast.KindArrayLiteral:   true,
	ast.KindVarDeclaration: true,
}

// Stats counts how many times each folding rule fired during a Reduce
// call, useful for a CLI `--explain` flag and for asserting that a
// specific rule actually fired in tests rather than only checking the
// final shape.
type Stats struct {
	DeadStatementsDropped   int
	LogicalShortCircuits    int
	ConditionalsFolded      int
	UnaryNotFolded          int
	IfBranchesEliminated    int
	BagOfHoldingStubbed     int
	PropertyKeysCanonicalized int
	MemberAccessCanonicalized int
}

func (s *Stats) add(other Stats) {
	s.DeadStatementsDropped += other.DeadStatementsDropped
	s.LogicalShortCircuits += other.LogicalShortCircuits
	s.ConditionalsFolded += other.ConditionalsFolded
	s.UnaryNotFolded += other.UnaryNotFolded
	s.IfBranchesEliminated += other.IfBranchesEliminated
	s.BagOfHoldingStubbed += other.BagOfHoldingStubbed
	s.PropertyKeysCanonicalized += other.PropertyKeysCanonicalized
	s.MemberAccessCanonicalized += other.MemberAccessCanonicalized
}

// Reduce rewrites n bottom-up and returns the node the caller should
// install in n's former slot: n itself (possibly with mutated children),
// a different node (n is released), or nil (the absent sentinel, meaning
// "delete me from my parent"). Reduce runs exactly one bottom-up pass;
// see ReduceToFixpoint for iterating further.
func Reduce(n *ast.Node) (*ast.Node, error) {
	result, _, err := reduce(n)
	return result, err
}

// ReduceWithStats is Reduce plus a fired-rule tally, grounded in
// go-dws's semantic analyzer tests which assert on diagnostic counts as
// well as final tree state.
func ReduceWithStats(n *ast.Node) (*ast.Node, Stats, error) {
	return reduce(n)
}

// ReduceToFixpoint iterates Reduce until a pass leaves the tree
// structurally unchanged or maxIterations (8) passes have run. Returns
// the final root and the aggregate stats across all iterations.
func ReduceToFixpoint(n *ast.Node) (*ast.Node, Stats, error) {
	const maxIterations = 8
	var total Stats
	for i := 0; i < maxIterations; i++ {
		// reduce mutates n in place, so compare against a snapshot.
		before := n.Clone()
		result, stats, err := reduce(n)
		if err != nil {
			return result, total, err
		}
		total.add(stats)
		if result.Equal(before) {
			return result, total, nil
		}
		n = result
		if n == nil {
			return nil, total, nil
		}
	}
	return n, total, nil
}

// reduce is the shared bottom-up worker behind Reduce/ReduceWithStats.
func reduce(n *ast.Node) (*ast.Node, Stats, error) {
	var stats Stats
	if n == nil {
		return nil, stats, nil
	}
	if err := ast.CheckArity(n); err != nil {
		return nil, stats, err
	}
	if err := reduceChildren(n, &stats); err != nil {
		return nil, stats, err
	}
	result, err := applyRule(n, &stats)
	return result, stats, err
}

// applyRule applies the variant-specific rewrite to n, whose children
// have already been reduced. Kinds without a rule are returned
// unchanged.
func applyRule(n *ast.Node, stats *Stats) (*ast.Node, error) {
	switch n.Kind() {
	case ast.KindProgram, ast.KindStatementList:
		return reduceStatementList(n, stats), nil
	case ast.KindOperator:
		return reduceOperator(n, stats), nil
	case ast.KindConditionalExpression:
		return reduceConditional(n, stats), nil
	case ast.KindUnary:
		return reduceUnaryNot(n, stats), nil
	case ast.KindIf:
		return reduceIf(n, stats), nil
	case ast.KindFunctionCall:
		return reduceFunctionCall(n, stats), nil
	case ast.KindObjectLiteralProperty:
		return reducePropertyKey(n, stats), nil
	case ast.KindDynamicMemberExpression:
		return reduceMemberAccess(n, stats), nil
	default:
		return n, nil
	}
}

// reduceChildren reduces each of n's children in place, replacing a
// child whose reduction differs and dropping (if n is variadic) or
// nulling (if n is fixed-arity) a child that reduces to absent.
func reduceChildren(n *ast.Node, stats *Stats) error {
	shrinkable := variadic[n.Kind()]
	i := 0
	for i < n.NumChildren() {
		child := n.ChildAt(i)
		reduced, childStats, err := reduce(child)
		if err != nil {
			return err
		}
		stats.add(childStats)
		if reduced == nil {
			if shrinkable {
				n.RemoveChildAt(i)
				continue
			}
			n.ReplaceChildAt(i, nil)
			i++
			continue
		}
		if reduced != child {
			n.ReplaceChildAt(i, reduced)
		}
		i++
	}
	return nil
}
