package ast

// arities maps each fixed-arity Kind to its required child count. Variadic
// kinds (StatementList, Program, ArgList, ObjectLiteral, ArrayLiteral) are
// absent from this table and accept any length.
var arities = map[Kind]int{
	KindParenthetical:           1,
	KindUnary:                   1,
	KindPostfix:                 1,
	KindOperator:                2,
	KindAssignment:              2,
	KindConditionalExpression:   3,
	KindFunctionCall:            2,
	KindFunctionConstructor:     2,
	KindStaticMemberExpression:  2,
	KindDynamicMemberExpression: 2,
	KindObjectLiteralProperty:   2,
	KindFunctionDeclaration:     3,
	KindFunctionExpression:      3,
	KindIf:                      3,
	KindWhile:                   2,
	KindDoWhile:                 2,
	KindForLoop:                 4,
	KindForIn:                   3,
	KindWith:                    2,
	KindTry:                     4,
	KindSwitch:                  2,
	KindCaseClause:              1,
	KindDefaultClause:           0,
	KindStatementWithExpression: 1,
	KindLabel:                   2,
}

// CheckArity reports ErrStructuralViolation if n's kind has a fixed arity
// that n's current child count does not match. Variadic kinds and leaves
// (NumericLiteral, StringLiteral, ...) always pass. The reducer calls
// this on every node before reducing it, so a malformed tree fails there
// with a named sentinel error; the printer does not check arity.
func CheckArity(n *Node) error {
	if n == nil {
		return nil
	}
	want, fixed := arities[n.kind]
	if !fixed {
		return nil
	}
	if len(n.children) != want {
		return ErrStructuralViolation
	}
	return nil
}
