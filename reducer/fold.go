package reducer

import "github.com/cwbudde/go-dws/ast"

// reduceOperator short-circuit folds the logical operators and the comma
// operator. All other binary operators are left untouched.
func reduceOperator(n *ast.Node, stats *Stats) *ast.Node {
	op := n.Op()
	left, right := n.Left(), n.Right()

	switch op {
	case ast.OpLogicalOr:
		if ast.IsConstantTruthy(left) {
			stats.LogicalShortCircuits++
			return left
		}
		if ast.IsConstantFalsy(left) {
			if ast.IsConstantTruthy(right) {
				stats.LogicalShortCircuits++
				return right
			}
			if ast.IsConstantFalsy(right) {
				stats.LogicalShortCircuits++
				return ast.NewBooleanLiteral(false, n.Lineno())
			}
		}
	case ast.OpLogicalAnd:
		if ast.IsConstantFalsy(left) {
			stats.LogicalShortCircuits++
			return ast.NewBooleanLiteral(false, n.Lineno())
		}
		if ast.IsConstantTruthy(left) {
			if ast.IsConstantFalsy(right) {
				stats.LogicalShortCircuits++
				return ast.NewBooleanLiteral(false, n.Lineno())
			}
			if !ast.IsConstant(right) {
				stats.LogicalShortCircuits++
				return right
			}
		}
	case ast.OpComma:
		if ast.IsConstant(left) {
			stats.LogicalShortCircuits++
			return right
		}
	}
	return n
}

// reduceConditional collapses a ConditionalExpression with a constant
// condition to whichever branch it selects.
func reduceConditional(n *ast.Node, stats *Stats) *ast.Node {
	cond := n.Cond()
	if ast.IsConstantTruthy(cond) {
		stats.ConditionalsFolded++
		return n.Then()
	}
	if ast.IsConstantFalsy(cond) {
		stats.ConditionalsFolded++
		return n.Else()
	}
	return n
}

// reduceUnaryNot folds `!x` to a BooleanLiteral when x's truthiness is
// statically known. Every other unary operator is left untouched.
func reduceUnaryNot(n *ast.Node, stats *Stats) *ast.Node {
	if n.Op() != ast.OpNot {
		return n
	}
	operand := n.Operand()
	if ast.IsConstantTruthy(operand) {
		stats.UnaryNotFolded++
		return ast.NewBooleanLiteral(false, n.Lineno())
	}
	if ast.IsConstantFalsy(operand) {
		stats.UnaryNotFolded++
		return ast.NewBooleanLiteral(true, n.Lineno())
	}
	return n
}
