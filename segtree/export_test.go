// SPDX-License-Identifier: MIT

package segtree

// QueryVisits runs a query on [l,r] (which must be valid and non-empty) and
// returns how many nodes the walk touched.
func QueryVisits(t *Tree, l, r int) int {
	var visits int
	t.query(l, r, &visits)

	return visits
}

// MaxNodeIndex exposes the node-count computation.
func MaxNodeIndex(n int) int {
	return maxNodeIndex(0, 0, n-1)
}
