// SPDX-License-Identifier: MIT

package expr

// Walk visits n and its descendants in pre-order. When fn returns false the
// children of the current node are skipped. Nil interfaces are ignored; a
// typed nil pointer (a nil *Call factor, say) is visited as a leaf.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// DeclaredDegree returns the degree a node was built for. Only polynomials and
// bare coefficients (degree 0) carry a declared degree.
func DeclaredDegree(n Node) (int, bool) {
	switch v := n.(type) {
	case *Polynomial:
		if v == nil {
			return 0, false
		}
		return v.Degree, true
	case Coefficient:
		return 0, true
	default:
		return 0, false
	}
}

// Count returns the number of nodes of kind k in the tree rooted at n.
func Count(n Node, k Kind) int {
	total := 0
	Walk(n, func(m Node) bool {
		if m.Kind() == k {
			total++
		}
		return true
	})
	return total
}
