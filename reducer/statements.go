package reducer

import "github.com/cwbudde/go-dws/ast"

// reduceStatementList drops any child whose value is a statically
// constant expression in statement position, since its evaluation is
// observable only through control flow this package never reorders.
// ast.IsConstant is narrow by design, so it never mismatches a
// compound-statement child here.
func reduceStatementList(n *ast.Node, stats *Stats) *ast.Node {
	i := 0
	for i < n.NumChildren() {
		child := n.ChildAt(i)
		if ast.IsConstant(child) {
			n.RemoveChildAt(i)
			stats.DeadStatementsDropped++
			continue
		}
		i++
	}
	return n
}

// reduceIf rewrites an If: a constant condition eliminates the branch
// that can never run, a then-less-and-else-less If degrades to its
// (possibly side-effecting) condition alone, and an empty then with a
// non-empty else flips to a negated-condition If whose then is the old
// else (the moved block keeps its braces when printed — see
// ast.Node.ForceBraces).
func reduceIf(n *ast.Node, stats *Stats) *ast.Node {
	cond := n.Cond()
	then := n.Then()
	els := n.Else()

	if ast.IsConstantTruthy(cond) {
		stats.IfBranchesEliminated++
		return then
	}
	if ast.IsConstantFalsy(cond) {
		stats.IfBranchesEliminated++
		return els
	}

	if !ast.IsAbsent(els) && els.NumChildren() == 0 {
		n.SetElse(nil)
		els = nil
	}

	thenEmpty := then.NumChildren() == 0
	if thenEmpty && ast.IsAbsent(els) {
		stats.IfBranchesEliminated++
		return cond
	}
	if thenEmpty && !ast.IsAbsent(els) {
		negated := ast.NewUnary(ast.OpNot, ast.NewParenthetical(cond, cond.Lineno()), cond.Lineno())
		folded := reduceUnaryNot(negated, stats)
		n.ReplaceChildAt(0, folded)
		els.SetForceBraces(true)
		n.SetThen(els)
		n.SetElse(nil)
		stats.IfBranchesEliminated++
		return n
	}
	return n
}
