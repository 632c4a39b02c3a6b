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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// checkInvariants verifies the testable properties from spec §8 that hold for any diff result
// regardless of which algorithm tree produced it: coverage, equality soundness, maximality, and
// that every chunk is solved.
func checkInvariants(t *testing.T, result *Result, left, right []byte) {
	t.Helper()
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}

	if got := reconstructLeft(result.Left, result.Chunks); string(got) != string(left) {
		t.Errorf("coverage (left): got %q, want %q", got, left)
	}
	if got := reconstructRight(result.Right, result.Chunks); string(got) != string(right) {
		t.Errorf("coverage (right): got %q, want %q", got, right)
	}

	for i, c := range result.Chunks {
		if !c.Solved {
			t.Errorf("chunk %d is unsolved in final result: %+v", i, c)
		}
		if c.Equal() {
			if c.LeftCount != c.RightCount {
				t.Errorf("chunk %d: equal run with LeftCount=%d != RightCount=%d", i, c.LeftCount, c.RightCount)
			}
			for k := 0; k < c.LeftCount; k++ {
				if !result.Left.Same(c.LeftStart+k, result.Right, c.RightStart+k) {
					t.Errorf("chunk %d: equal run atom %d not actually byte-equal", i, k)
				}
			}
		}
		if i > 0 && result.Chunks[i-1].Equal() && c.Equal() {
			t.Errorf("chunks %d and %d are both equal runs and adjacent; maximality violated", i-1, i)
		}
	}
}

func TestDiffScenarios(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		want        []Chunk // nil means: only check invariants, not an exact sequence
	}{
		{
			name:  "equal-inputs",
			left:  "a\nb\nc\n",
			right: "a\nb\nc\n",
			want: []Chunk{
				{LeftStart: 0, LeftCount: 3, RightStart: 0, RightCount: 3, Solved: true},
			},
		},
		{
			name:  "pure-insertion",
			left:  "",
			right: "x\n",
			want: []Chunk{
				{LeftStart: 0, LeftCount: 0, RightStart: 0, RightCount: 1, Solved: true},
			},
		},
		{
			name:  "pure-deletion",
			left:  "x\n",
			right: "",
			want: []Chunk{
				{LeftStart: 0, LeftCount: 1, RightStart: 0, RightCount: 0, Solved: true},
			},
		},
		{
			name:  "classic-myers-example",
			left:  "A\nB\nC\nD\nE\n",
			right: "X\nB\nC\nY\n",
			want: []Chunk{
				{LeftStart: 0, LeftCount: 1, RightStart: 0, RightCount: 0, Solved: true}, // minus A
				{LeftStart: 1, LeftCount: 0, RightStart: 0, RightCount: 1, Solved: true}, // plus X
				{LeftStart: 1, LeftCount: 2, RightStart: 1, RightCount: 2, Solved: true}, // equal B, C
				{LeftStart: 3, LeftCount: 2, RightStart: 3, RightCount: 0, Solved: true}, // minus D, E
				{LeftStart: 5, LeftCount: 0, RightStart: 3, RightCount: 1, Solved: true}, // plus Y
			},
		},
		{
			name:  "patience-favorable",
			left:  "1\n2\n3\n4\n",
			right: "1\n4\n2\n3\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := []byte(tt.left), []byte(tt.right)
			result := Diff(DefaultConfig(), left, right)
			checkInvariants(t, result, left, right)
			if tt.want != nil {
				if diff := cmp.Diff(tt.want, result.Chunks); diff != "" {
					t.Errorf("chunk sequence mismatch (-want +got):\n%s", diff)
				}
			}

			// Determinism: running the same diff again produces the same chunk sequence.
			again := Diff(DefaultConfig(), left, right)
			if diff := cmp.Diff(result.Chunks, again.Chunks); diff != "" {
				t.Errorf("non-deterministic chunk sequence (-first +second):\n%s", diff)
			}
		})
	}
}

// TestDiffForcesMyersDivide exercises the myers-divide path directly (bypassing Patience) by
// capping AlgoMyers to a single-byte budget, matching spec §8 scenario 6.
func TestDiffForcesMyersDivide(t *testing.T) {
	cfg := Config{
		AtomizeFunc: AtomizeLines,
		Algo: &AlgoConfig{
			Impl:               AlgoMyers,
			PermittedStateSize: 1,
			Fallback: &AlgoConfig{
				Impl: AlgoMyersDivide,
				Inner: &AlgoConfig{
					Impl: AlgoNone,
				},
			},
		},
	}
	left := []byte("A\nB\nC\nD\nE\n")
	right := []byte("X\nB\nC\nY\n")
	result := Diff(cfg, left, right)
	checkInvariants(t, result, left, right)
}

// TestFallbackMonotonicity checks spec §8's fallback-monotonicity property: with
// PermittedStateSize = 0 (unbounded), Myers-full never requests a fallback, even for inputs with
// no common atoms at all.
func TestFallbackMonotonicity(t *testing.T) {
	cfg := Config{
		AtomizeFunc: AtomizeLines,
		Algo: &AlgoConfig{
			Impl: AlgoMyers, // PermittedStateSize left at zero: unbounded.
		},
	}
	left := []byte("a\nb\nc\n")
	right := []byte("x\ny\nz\n")
	result := Diff(cfg, left, right)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	checkInvariants(t, result, left, right)
}

func TestDiffInvalidConfig(t *testing.T) {
	result := Diff(Config{}, []byte("a\n"), []byte("b\n"))
	if result.Err != ErrInvalidInput {
		t.Errorf("Diff with no AtomizeFunc: err = %v, want %v", result.Err, ErrInvalidInput)
	}
}

// TestDiffDepthExhaustion checks that running out of recursion depth resolves silently to the
// trivial algorithm rather than aborting the diff (spec §4.8).
func TestDiffDepthExhaustion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecursionDepth = 1
	left := []byte("A\nB\nC\nD\nE\n")
	right := []byte("X\nB\nC\nY\n")
	result := Diff(cfg, left, right)
	checkInvariants(t, result, left, right)
}

func TestDiffRandomizedInvariants(t *testing.T) {
	alphabets := [][]string{
		{"a", "b"},
		{"a", "b", "c", "d", "e"},
	}
	for _, alphabet := range alphabets {
		for seed := 0; seed < 20; seed++ {
			left := randomLines(alphabet, seed, 37)
			right := randomLines(alphabet, seed+1000, 41)
			result := Diff(DefaultConfig(), left, right)
			checkInvariants(t, result, left, right)
		}
	}
}

// randomLines is a small deterministic (seed-based, no math/rand dependency on global state)
// pseudo-random line generator used only to fuzz the engine's invariants across many shapes.
func randomLines(alphabet []string, seed, n int) []byte {
	state := uint32(seed*2654435761 + 1)
	next := func() uint32 {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return state
	}
	var out []byte
	for i := 0; i < n; i++ {
		out = append(out, alphabet[next()%uint32(len(alphabet))]...)
		out = append(out, '\n')
	}
	return out
}
