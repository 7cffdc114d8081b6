package internal

import "sort"

// Sorts point ids by their squared distance from a center point, breaking ties
// by index so that the insertion order is fully determined by the input.
//
// The order only affects speed. Inserting points outward from the seed keeps
// each new point close to the hull, so the visible edge is found in a few
// steps and the fans stay small.
type proximitySort struct {
	ids   []int
	dists []float64 // indexed by point id, not by position in ids
}

func (s *proximitySort) Len() int {
	return len(s.ids)
}

func (s *proximitySort) Swap(i, j int) {
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
}

func (s *proximitySort) Less(i, j int) bool {
	a, b := s.ids[i], s.ids[j]
	if s.dists[a] != s.dists[b] {
		return s.dists[a] < s.dists[b]
	}
	return a < b
}

// Returns the ids other than the seed, ordered by distance to center. dists is
// scratch space of at least coords.Len() entries, and ids is not modified.
func SortByProximity(coords Coords, ids []int, seed Seed, center Point, dists []float64) []int {
	sorted := make([]int, 0, len(ids))
	for _, i := range ids {
		if seed.Contains(i) {
			continue
		}
		dists[i] = squaredDistance(coords.X(i), coords.Y(i), center.X, center.Y)
		sorted = append(sorted, i)
	}
	sort.Sort(&proximitySort{sorted, dists})
	return sorted
}
