// Package selection picks the next question position for a study
// session.
package selection

import "math/rand"

// PickRandom returns a uniformly random index in [0, total) that is
// not in excluded. Once excluded covers the whole range the set is
// cleared and the pick runs over the full range again, so a session
// keeps serving questions after the bank is exhausted. Returns -1
// only for an empty range.
func PickRandom(rng *rand.Rand, total int, excluded map[int]bool) int {
	if total <= 0 {
		return -1
	}

	candidates := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if !excluded[i] {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		for i := range excluded {
			delete(excluded, i)
		}
		return rng.Intn(total)
	}
	return candidates[rng.Intn(len(candidates))]
}
