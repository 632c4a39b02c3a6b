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

// AlgoNone is the trivial algorithm: it records the longest prefix where atoms are equal on both
// sides as an equal chunk, then emits the remaining left atoms (if any) as a deletion and the
// remaining right atoms (if any) as an insertion.
//
// It always succeeds and never leaves an unsolved chunk behind; it serves both as the final
// fallback of the algorithm tree and as the bounded-depth escape hatch the orchestrator falls back
// to when the recursion budget is exhausted.
func AlgoNone(cfg *AlgoConfig, st *State) error {
	left, right := st.Left(), st.Right()

	equal := 0
	for equal < left.Len() && equal < right.Len() && left.Same(equal, right, equal) {
		equal++
	}

	if equal > 0 {
		st.AddSolved(0, equal, 0, equal)
	}
	if equal < left.Len() {
		st.AddSolved(equal, left.Len()-equal, equal, 0)
	}
	if equal < right.Len() {
		st.AddSolved(equal, 0, equal, right.Len()-equal)
	}
	return nil
}
