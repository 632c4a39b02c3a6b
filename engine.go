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

// defaultMaxRecursionDepth bounds the worst-case stack depth and working set of the recursive
// orchestrator when [Config.MaxRecursionDepth] is left at zero.
const defaultMaxRecursionDepth = 1024

// Config is the input to [Diff]: how to split the inputs into atoms, which algorithm tree to run,
// and how deep the orchestrator may recurse.
type Config struct {
	// AtomizeFunc splits both inputs into atoms. Required; AtomizeLines is the usual choice.
	AtomizeFunc AtomizeFunc
	// AtomizeContext is passed through to AtomizeFunc verbatim.
	AtomizeContext any

	// Algo is the root of the algorithm tree. Required.
	Algo *AlgoConfig

	// MaxRecursionDepth caps nested algorithm invocations. Zero means defaultMaxRecursionDepth.
	MaxRecursionDepth int
}

// Result is the output of [Diff]: a root [Data] for each side plus the ordered list of solved
// chunks covering them.
//
// Result is always returned, even on failure, with Err set: Left, Right, and Chunks remain safe to
// read (Chunks may simply be shorter than a complete diff would produce).
type Result struct {
	Left, Right *Data
	Chunks      []Chunk
	Err         error
}

// State is the engine state passed to an [AlgoFunc]: the bounded subsection pair the algorithm must
// cover, and the means to record its findings.
//
// An algorithm must account for every atom in Left() and Right(): the concatenation of the left
// spans of chunks it adds (directly, or via recursion into unsolved chunks) must reconstruct
// Left()'s atoms in order, and likewise for Right().
type State struct {
	result *Result
	left   *Data
	right  *Data
	depth  int
	acc    accumulator
}

// Left returns the left subsection this algorithm invocation must cover.
func (st *State) Left() *Data { return st.left }

// Right returns the right subsection this algorithm invocation must cover.
func (st *State) Right() *Data { return st.right }

// Depth returns the number of nested algorithm invocations still permitted below this one.
func (st *State) Depth() int { return st.depth }

// AddSolved records a final chunk: an equal run (leftCount == rightCount > 0), a deletion
// (rightCount == 0), or an insertion (leftCount == 0). leftStart/rightStart are local atom indices
// into Left()/Right().
func (st *State) AddSolved(leftStart, leftCount, rightStart, rightCount int) {
	st.acc.add(true, st.left.GlobalIndex(leftStart), leftCount, st.right.GlobalIndex(rightStart), rightCount)
}

// AddUnsolved records a subproblem for the configured inner algorithm to resolve. A subproblem
// empty on one side is trivially solved and is recorded as a solved deletion or insertion; one
// empty on both sides is not recorded at all.
func (st *State) AddUnsolved(leftStart, leftCount, rightStart, rightCount int) {
	st.acc.add(false, st.left.GlobalIndex(leftStart), leftCount, st.right.GlobalIndex(rightStart), rightCount)
}

// Diff atomizes left and right according to cfg, then runs cfg.Algo (falling back and subdividing
// per the algorithm tree) to produce a minimal-edit chunk sequence.
func Diff(cfg Config, left, right []byte) *Result {
	result := &Result{
		Left:  newRoot(left),
		Right: newRoot(right),
	}

	if cfg.AtomizeFunc == nil {
		result.Err = ErrInvalidInput
		return result
	}
	if err := cfg.AtomizeFunc(cfg.AtomizeContext, result.Left, result.Right); err != nil {
		result.Err = err
		return result
	}
	// AtomizeFunc populates atoms directly on the root; make sure the root's view spans all of
	// them (a hand-written AtomizeFunc might only set d.atoms without touching d.root/d.offset).
	result.Left.atoms = result.Left.root.atoms
	result.Right.atoms = result.Right.root.atoms

	depth := cfg.MaxRecursionDepth
	if depth == 0 {
		depth = defaultMaxRecursionDepth
	}

	st := &State{
		result: result,
		left:   result.Left.subsection(0, result.Left.Len()),
		right:  result.Right.subsection(0, result.Right.Len()),
		depth:  depth,
	}
	result.Err = run(cfg.Algo, st)
	return result
}

// run is the orchestrator: it invokes cfg's algorithm (falling back as requested), promotes its
// solved chunks to the result in order, and recurses into each unsolved chunk using cfg's inner
// algorithm on a fresh, depth-reduced nested state.
func run(cfg *AlgoConfig, st *State) error {
	if cfg == nil || cfg.Impl == nil || st.depth <= 0 {
		// Depth exhaustion is not an error (spec §4.8): it silently resolves to the trivial
		// algorithm instead of aborting the diff.
		st.acc.reset(&st.result.Chunks)
		return AlgoNone(cfg, st)
	}

	st.acc.reset(&st.result.Chunks)
	err := cfg.Impl(cfg, st)
	switch {
	case err == errUseFallback:
		return run(cfg.Fallback, st)
	case err != nil:
		return err
	}

	for _, c := range st.acc.temp {
		if c.Solved {
			st.result.Chunks = append(st.result.Chunks, c)
			continue
		}
		nested := &State{
			result: st.result,
			left:   st.left.root.subsection(c.LeftStart, c.LeftCount),
			right:  st.right.root.subsection(c.RightStart, c.RightCount),
			depth:  st.depth - 1,
		}
		if err := run(cfg.Inner, nested); err != nil {
			return err
		}
	}
	return nil
}
