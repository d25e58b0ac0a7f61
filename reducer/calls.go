package reducer

import "github.com/cwbudde/go-dws/ast"

// bagOfHoldingName is the sentinel callee: a call to a function of this
// name is understood to report whether an environment feature is
// present, and is assumed absent in the reduced target, folding the call
// to a BooleanLiteral(false).
const bagOfHoldingName = "bagofholding"

// reduceFunctionCall folds calls naming the bagofholding feature probe
// to a constant false.
func reduceFunctionCall(n *ast.Node, stats *Stats) *ast.Node {
	callee := n.Callee()
	if callee.Kind() == ast.KindIdentifier && callee.Name() == bagOfHoldingName {
		stats.BagOfHoldingStubbed++
		return ast.NewBooleanLiteral(false, n.Lineno())
	}
	return n
}
