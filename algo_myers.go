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

// AlgoMyers implements the classical Myers edit-graph shortest-path search [Myers 1986], tracing
// the whole graph and keeping one v-array per edit distance d so the optimal path can be
// reconstructed by backtracking. This requires O((left+right)^2) memory in the worst case, which is
// why AlgoConfig.PermittedStateSize lets callers cap it and fall back to a linear-space algorithm
// (typically AlgoMyersDivide) for large inputs.
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
func AlgoMyers(cfg *AlgoConfig, st *State) error {
	left, right := st.Left(), st.Right()
	n, m := left.Len(), right.Len()
	max := n + m

	if max == 0 {
		return nil
	}

	// kd[d][k+max] holds the furthest-reaching x coordinate on diagonal k after d edits. Bound
	// the memory this would take before allocating anything.
	width := 2*max + 1
	rows := max + 1
	cells := rows * width
	if cfg.PermittedStateSize != 0 {
		const sizeOfInt = 8
		if cells < 0 || cells > cfg.PermittedStateSize/sizeOfInt {
			return errUseFallback
		}
	}

	kd := make([][]int, rows)
	buf := make([]int, cells)
	for d := range kd {
		kd[d] = buf[d*width : (d+1)*width]
	}

	same := func(x, y int) bool { return left.Same(x-1, right, y-1) }

	var dStar, kStar int
	found := false
forward:
	for d := 0; d <= max; d++ {
		for k := d; k >= -d; k -= 2 {
			// Diagonals outside the graph (k < -m or k > n) can never hold a real point; skip
			// them rather than reading bogus history off adjacent diagonals.
			if k < -m || k > n {
				if k < 0 {
					break
				}
				continue
			}
			var x int
			if d == 0 {
				x = 0
			} else if k > -d && (k == d || (k-1 >= -m && kd[d-1][k-1+max] >= kd[d-1][k+1+max])) {
				x = kd[d-1][k-1+max] + 1 // step right (deletion)
			} else {
				x = kd[d-1][k+1+max] // step down (insertion)
			}
			y := x - k
			for x < n && y < m && same(x+1, y+1) {
				x++
				y++
			}
			kd[d][k+max] = x
			if x == n && y == m {
				dStar, kStar = d, k
				found = true
				break forward
			}
		}
	}
	if !found {
		// Cannot happen for a finite graph; treat as a logic inconsistency by falling back.
		return errUseFallback
	}

	// Backtrack: reuse each kd[d] row as a 2-slot (x, y) waypoint store.
	x, k := kd[dStar][kStar+max], kStar
	for d := dStar; d >= 0; d-- {
		y := x - k
		kd[d][0], kd[d][1] = x, y
		if d == 0 {
			break
		}
		// Same predecessor choice as the forward sweep, so the retraced path is the recorded one.
		var pk int
		if k > -d && (k == d || (k-1 >= -m && kd[d-1][k-1+max] >= kd[d-1][k+1+max])) {
			pk = k - 1
		} else {
			pk = k + 1
		}
		x = kd[d-1][pk+max]
		k = pk
	}

	// Forward emission: walk waypoints d = 0..dStar, emitting the edit (if any) and snake between
	// successive waypoints. The path always starts at the true origin (0, 0), not at kd[0]: d == 0
	// may itself already be a (possibly empty) pure snake away from the origin.
	px, py := 0, 0
	for d := 0; d <= dStar; d++ {
		x, y := kd[d][0], kd[d][1]
		dx, dy := x-px, y-py
		switch {
		case dx == dy:
			// Pure snake with no edit between these waypoints: only possible at d == 0, i.e. a
			// common leading run (or the whole diff, if dStar == 0).
			if dx > 0 {
				st.AddSolved(px, dx, py, dy)
			}
		case dx-dy == 1:
			// One deletion, then a snake.
			st.AddSolved(px, 1, py, 0)
			if dx-1 > 0 {
				st.AddSolved(px+1, dx-1, py, dy)
			}
		case dy-dx == 1:
			// One insertion, then a snake.
			st.AddSolved(px, 0, py, 1)
			if dy-1 > 0 {
				st.AddSolved(px, dx, py+1, dy-1)
			}
		default:
			return errUseFallback
		}
		px, py = x, y
	}
	return nil
}
