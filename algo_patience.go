// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diff

import "sort"

// idxRange is a half-open range of atom indices, used to record the run of identical atoms
// swallowed around a patience anchor.
type idxRange struct{ start, end int }

func (r idxRange) len() int { return r.end - r.start }

// AlgoPatience implements Bram Cohen's Patience Diff: find the atoms that occur exactly once on
// each side and match each other, take the longest run of those that appears in the same relative
// order on both sides (the LCS, via patience sort), and use each member of that run as a fixed
// anchor. The spans between anchors are left unsolved for the configured inner algorithm; the spans
// the anchors themselves cover (extended to any identical neighbouring atoms) become equal chunks.
//
// If no atom is unique on both sides, Patience has nothing to anchor on and requests its fallback.
//
// https://bramcohen.livejournal.com/73318.html
func AlgoPatience(cfg *AlgoConfig, st *State) error {
	left, right := st.Left(), st.Right()
	n, m := left.Len(), right.Len()

	lUniq, rUniq, lPos, count := markUniqueInBoth(left, right)
	if count == 0 {
		return errUseFallback
	}

	leftRange, rightRange := swallowIdenticalNeighbors(left, right, lUniq, rUniq, lPos)

	anchors := patienceLCS(lUniq, lPos)

	leftPos, rightPos := 0, 0
	for i := 0; i <= len(anchors); i++ {
		leftIdx, rightIdx := n, m
		if i < len(anchors) {
			l := anchors[i]
			r := lPos[l]
			leftIdx = leftRange[l].start
			rightIdx = rightRange[r].start
		}

		// The section before this anchor (or, on the final iteration, after the last one): left as
		// an unsolved chunk for the inner algorithm unless it's empty on one side.
		st.AddUnsolved(leftPos, leftIdx-leftPos, rightPos, rightIdx-rightPos)

		if i == len(anchors) {
			break
		}
		l := anchors[i]
		r := lPos[l]
		st.AddSolved(leftRange[l].start, leftRange[l].len(), rightRange[r].start, rightRange[r].len())
		leftPos, rightPos = leftRange[l].end, rightRange[r].end
	}
	return nil
}

// markUniqueInBoth finds the atoms that occur exactly once in left, exactly once in right, and are
// the same atom on both sides. It returns, for each side, which atoms qualify and (for left) the
// matching index on right, plus the total count.
//
// This computes the grouped count directly instead of the pairwise sweep-and-decrement the original
// C implementation uses, which double-counts a value's own decrement once per additional duplicate
// beyond the second when three or more atoms share a value. Grouping by content
// sidesteps the bug category entirely rather than reproducing and patching it.
func markUniqueInBoth(left, right *Data) (lUniq, rUniq []bool, lPos []int, count int) {
	n, m := left.Len(), right.Len()
	lUniq = make([]bool, n)
	rUniq = make([]bool, m)
	lPos = make([]int, n)
	for i := range lPos {
		lPos[i] = -1
	}

	rGroups := make(map[string][]int, m)
	for j := 0; j < m; j++ {
		k := string(right.Bytes(j))
		rGroups[k] = append(rGroups[k], j)
	}

	lGroups := make(map[string][]int, n)
	for i := 0; i < n; i++ {
		k := string(left.Bytes(i))
		lGroups[k] = append(lGroups[k], i)
	}

	for k, lIdxs := range lGroups {
		if len(lIdxs) != 1 {
			continue
		}
		rIdxs, ok := rGroups[k]
		if !ok || len(rIdxs) != 1 {
			continue
		}
		i, j := lIdxs[0], rIdxs[0]
		lUniq[i] = true
		rUniq[j] = true
		lPos[i] = j
		count++
	}
	return lUniq, rUniq, lPos, count
}

// swallowIdenticalNeighbors extends each unique-in-both anchor into the run of atoms around it that
// are identical on both sides, so that two files differing only in where a distinctive line sits
// relative to a run of blank lines (or any other repeated content) still produce one maximal equal
// chunk instead of splitting it at the anchor.
//
// Any anchor absorbed into another anchor's downward extension is demoted (it's already covered by
// the absorbing anchor's range) and no longer contributes to the patience sort.
func swallowIdenticalNeighbors(left, right *Data, lUniq, rUniq []bool, lPos []int) (leftRange, rightRange []idxRange) {
	n, m := left.Len(), right.Len()
	leftRange = make([]idxRange, n)
	rightRange = make([]idxRange, m)

	lMin, rMin := 0, 0
	for l := 0; l < n; l++ {
		if !lUniq[l] {
			continue
		}
		r := lPos[l]

		upL, upR := l, r
		for upL > lMin && upR > rMin && left.Same(upL-1, right, upR-1) {
			upL--
			upR--
		}

		downL, downR := l+1, r+1
		for downL < n && downR < m && left.Same(downL, right, downR) {
			if lUniq[downL] {
				lUniq[downL] = false
				rUniq[downR] = false
			}
			downL++
			downR++
		}

		leftRange[l] = idxRange{upL, downL}
		rightRange[r] = idxRange{upR, downR}
		lMin, rMin = downL, downR
	}
	return leftRange, rightRange
}

// patienceLCS finds the longest run of unique-in-both left indices whose matching right indices
// (via lPos) also increase in order: the longest common subsequence of the common-unique atoms. It
// uses patience sort, binary-searching for each card's stack as in the classic LIS algorithm, and
// reconstructs the winning chain via per-card back-pointers.
func patienceLCS(lUniq []bool, lPos []int) []int {
	var uniques []int
	for l, ok := range lUniq {
		if ok {
			uniques = append(uniques, l)
		}
	}
	if len(uniques) == 0 {
		return nil
	}

	stacks := make([]int, 0, len(uniques)) // stacks[k] = index into uniques/prev of that stack's top card
	prev := make([]int, len(uniques))
	for i, l := range uniques {
		r := lPos[l]
		target := sort.Search(len(stacks), func(k int) bool {
			return lPos[uniques[stacks[k]]] >= r
		})
		if target == len(stacks) {
			stacks = append(stacks, i)
		} else {
			stacks[target] = i
		}
		if target > 0 {
			prev[i] = stacks[target-1]
		} else {
			prev[i] = -1
		}
	}

	lcs := make([]int, len(stacks))
	idx := stacks[len(stacks)-1]
	for i := len(lcs) - 1; i >= 0; i-- {
		lcs[i] = uniques[idx]
		idx = prev[idx]
	}
	return lcs
}
