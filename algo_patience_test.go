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

import "testing"

func TestAlgoPatienceNoCommonUniqueFallsBack(t *testing.T) {
	// Every atom repeats on both sides, so nothing is unique-in-both.
	st, _ := newTestState([]byte("a\na\n"), []byte("a\na\na\n"))
	if err := AlgoPatience(nil, st); err != errUseFallback {
		t.Errorf("AlgoPatience with no common-unique atoms: err = %v, want errUseFallback", err)
	}
}

func TestAlgoPatienceFindsAnchor(t *testing.T) {
	st, result := newTestState([]byte("1\n2\n3\n4\n"), []byte("1\n4\n2\n3\n"))
	if err := AlgoPatience(nil, st); err != nil {
		t.Fatalf("AlgoPatience: err = %v, want nil", err)
	}
	if len(*result) == 0 {
		t.Fatalf("expected at least one chunk")
	}
	foundEqual := false
	for _, c := range *result {
		if c.Equal() {
			foundEqual = true
		}
	}
	if !foundEqual {
		t.Errorf("expected at least one equal anchor chunk, got %v", *result)
	}
}

// TestMarkUniqueInBothHandlesTripleDuplicates guards against the naive pairwise-sweep
// double-decrement bug (spec §9 "Possible source bug"): an atom appearing three or more times on
// one side must never be counted as unique, and grouping-by-count must get this right regardless
// of how many times it repeats.
func TestMarkUniqueInBothHandlesTripleDuplicates(t *testing.T) {
	left := newRoot([]byte("a\na\na\nb\n"))
	right := newRoot([]byte("a\nb\n"))
	atomizeLines(left)
	atomizeLines(right)

	lUniq, rUniq, lPos, count := markUniqueInBoth(left.subsection(0, left.Len()), right.subsection(0, right.Len()))
	if count != 1 {
		t.Fatalf("count = %d, want 1 (only \"b\" is unique on both sides)", count)
	}
	for i, ok := range lUniq {
		if ok && left.Bytes(i)[0] != 'b' {
			t.Errorf("left atom %d marked unique, want only the \"b\" atom marked", i)
		}
	}
	for j, ok := range rUniq {
		if ok && right.Bytes(j)[0] != 'b' {
			t.Errorf("right atom %d marked unique, want only the \"b\" atom marked", j)
		}
	}
	_ = lPos
}

func TestSwallowIdenticalNeighborsExtendsMaximalRun(t *testing.T) {
	// Left and right share a distinctive anchor ("X") surrounded by identical blank-line runs;
	// the swallow step should extend the anchor to cover the whole identical neighborhood,
	// producing one maximal equal chunk rather than splitting at the anchor (spec §4.7 step 4,
	// mandated by the "Maximality" invariant).
	left := []byte("\n\nX\n\n\n")
	right := []byte("\n\nX\n\n\n")
	cfg := &AlgoConfig{Impl: AlgoPatience}
	st, result := newTestState(left, right)
	if err := cfg.Impl(cfg, st); err != nil {
		t.Fatalf("AlgoPatience: err = %v", err)
	}
	if len(*result) != 1 || !(*result)[0].Equal() || (*result)[0].LeftCount != 5 {
		t.Errorf("expected a single maximal equal chunk of length 5, got %v", *result)
	}
}
