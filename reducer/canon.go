package reducer

import (
	"github.com/cwbudde/go-dws/ast"
	"github.com/cwbudde/go-dws/keyword"
)

// reducePropertyKey rewrites an object literal property quoted with a
// string that happens to be a valid identifier to its bare identifier
// form, matching how a printer would prefer to emit it.
func reducePropertyKey(n *ast.Node, stats *Stats) *ast.Node {
	key := n.Key()
	if key.Kind() == ast.KindStringLiteral && keyword.IsIdentifier(key.UnquotedValue()) {
		n.ReplaceChildAt(0, ast.NewIdentifier(key.UnquotedValue(), key.Lineno()))
		stats.PropertyKeysCanonicalized++
	}
	return n
}

// reduceMemberAccess canonicalizes obj["name"] to obj.name whenever the
// subscript is a string literal naming a valid identifier, the dynamic
// form being unnecessary in that case.
func reduceMemberAccess(n *ast.Node, stats *Stats) *ast.Node {
	subscript := n.Subscript()
	if subscript.Kind() == ast.KindStringLiteral && keyword.IsIdentifier(subscript.UnquotedValue()) {
		stats.MemberAccessCanonicalized++
		return ast.NewStaticMemberExpression(
			n.Object(),
			ast.NewIdentifier(subscript.UnquotedValue(), subscript.Lineno()),
			n.Lineno(),
		)
	}
	return n
}
