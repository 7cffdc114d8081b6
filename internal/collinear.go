package internal

import "sort"

// Fallback results for inputs that have no triangles.

// Every distinct point lies on one line through a and b. Order them along that
// line. The direction is normalized to point right (or up, for a vertical
// line) so the chain doesn't depend on which seed points were picked.
func CollinearChain(coords Coords, ids []int, a, b int) []int {
	ax, ay := coords.X(a), coords.Y(a)
	dx, dy := coords.X(b)-ax, coords.Y(b)-ay
	if dx < 0 || (dx == 0 && dy < 0) {
		dx, dy = -dx, -dy
	}

	projections := make(map[int]float64, len(ids))
	for _, i := range ids {
		projections[i] = (coords.X(i)-ax)*dx + (coords.Y(i)-ay)*dy
	}

	chain := append([]int(nil), ids...)
	sort.SliceStable(chain, func(i, j int) bool {
		pi, pj := projections[chain[i]], projections[chain[j]]
		if pi != pj {
			return pi < pj
		}
		return chain[i] < chain[j]
	})
	return chain
}

// Counterclockwise convex hull of the given distinct points (Andrew's monotone
// chain), without collinear points on the edges. This is the hull we report
// when legalization gives up, so it must not depend on the engine's state.
func ConvexHull(coords Coords, ids []int) []int {
	if len(ids) < 3 {
		return append([]int(nil), ids...)
	}

	sorted := append([]int(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if coords.X(a) != coords.X(b) {
			return coords.X(a) < coords.X(b)
		}
		if coords.Y(a) != coords.Y(b) {
			return coords.Y(a) < coords.Y(b)
		}
		return a < b
	})

	// Drop the last point of the chain while it doesn't make a left turn
	turnsLeft := func(chain []int, c int) bool {
		a, b := chain[len(chain)-2], chain[len(chain)-1]
		return Orient(coords.X(a), coords.Y(a), coords.X(b), coords.Y(b), coords.X(c), coords.Y(c)) > 0
	}

	hull := make([]int, 0, 2*len(sorted))
	for _, i := range sorted {
		for len(hull) >= 2 && !turnsLeft(hull, i) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	lower := len(hull) + 1
	for k := len(sorted) - 2; k >= 0; k-- {
		i := sorted[k]
		for len(hull) >= lower && !turnsLeft(hull, i) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	// The last point is the first point again
	return hull[:len(hull)-1]
}
