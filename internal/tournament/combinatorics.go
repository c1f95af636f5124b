package tournament

import "github.com/sazarkin/wcsim/internal/team"

// allGroupLetters is the twelve group letters A..L in order.
var allGroupLetters = groupLetters("ABCDEFGHIJKL")

// groupCombinations returns every size-k combination of group letters chosen
// from letters, in lexicographic index order (the standard next-combination
// advance: find the rightmost index not already at its maximum, bump it,
// then reset everything to its right).
func groupCombinations(letters []team.GroupID, k int) [][]team.GroupID {
	n := len(letters)
	if k > n || k < 0 {
		return nil
	}

	var out [][]team.GroupID
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		combo := make([]team.GroupID, k)
		for i, idx := range indices {
			combo[i] = letters[idx]
		}
		out = append(out, combo)

		i := k - 1
		for ; i >= 0; i-- {
			if indices[i] != i+n-k {
				break
			}
		}
		if i < 0 {
			return out
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
