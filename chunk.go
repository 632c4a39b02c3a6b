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

// Chunk is a contiguous span of the diff result: an equal run, a deletion, an insertion, or (before
// the orchestrator resolves it) an unsolved subproblem.
//
// LeftStart and RightStart are global atom indices (see [Data.GlobalIndex]) into the left and right
// root Data respectively. They always point at a real position even when the corresponding count is
// zero, so formatters can report an insertion/deletion point without a left or right anchor atom:
// counts, not a nil anchor, are authoritative for what the chunk means.
//
//	LeftCount > 0, RightCount > 0, equal:   LeftCount == RightCount, an equal run.
//	LeftCount > 0, RightCount == 0:         a deletion ("minus chunk").
//	LeftCount == 0, RightCount > 0:         an insertion ("plus chunk").
//	LeftCount > 0, RightCount > 0, !Solved: an unsolved subproblem for the inner algorithm.
//
// A chunk with both counts zero is never produced.
type Chunk struct {
	LeftStart, LeftCount   int
	RightStart, RightCount int
	Solved                 bool
}

// Equal reports whether c is a solved equal run.
func (c Chunk) Equal() bool { return c.Solved && c.LeftCount > 0 && c.RightCount > 0 }

// Delete reports whether c is a solved deletion.
func (c Chunk) Delete() bool { return c.Solved && c.LeftCount > 0 && c.RightCount == 0 }

// Insert reports whether c is a solved insertion.
func (c Chunk) Insert() bool { return c.Solved && c.LeftCount == 0 && c.RightCount > 0 }

// Kind classifies a solved Chunk as an edit operation. Kind panics if c is unsolved; callers that
// may see unsolved chunks should check c.Solved first.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	KindEqual Kind = iota
	KindDelete
	KindInsert
)

// Kind reports c's edit operation. c must be solved.
func (c Chunk) Kind() Kind {
	switch {
	case c.Equal():
		return KindEqual
	case c.Delete():
		return KindDelete
	case c.Insert():
		return KindInsert
	default:
		panic("diff: Kind called on an unsolved chunk")
	}
}

// accumulator is an append-only builder that distinguishes provisional (unsolved) subsections from
// chunks that are already final.
//
// The promotion rule: if temp is empty and the new chunk is solved, it goes straight into result,
// streaming an algorithm's immediately-solved chunks into the final output without a second pass;
// if it directly continues the last result chunk and has the same kind, that chunk is extended
// instead. Otherwise (temp is non-empty, or the chunk is unsolved) it goes into temp, deferring promotion to
// the orchestrator, which walks temp after the algorithm returns.
type accumulator struct {
	result *[]Chunk
	temp   []Chunk
}

func (a *accumulator) add(solved bool, leftStart, leftCount, rightStart, rightCount int) {
	if leftCount == 0 && rightCount == 0 {
		// Never produced (spec §3); nothing to record.
		return
	}
	c := Chunk{
		LeftStart:   leftStart,
		LeftCount:   leftCount,
		RightStart:  rightStart,
		RightCount:  rightCount,
		Solved:      solved,
	}
	if !solved && (leftCount == 0 || rightCount == 0) {
		// An unsolved chunk with nothing on one side is trivially solved: there's nothing to
		// recurse into (spec §9 "Unsolved chunks carrying null anchor on one side").
		c.Solved = true
	}
	if len(a.temp) == 0 && c.Solved {
		// A solved chunk that directly continues the last result chunk of the same kind extends
		// it, so consecutive single-atom edits form one maximal chunk.
		if n := len(*a.result); n > 0 {
			last := &(*a.result)[n-1]
			if last.Solved && last.Kind() == c.Kind() &&
				last.LeftStart+last.LeftCount == c.LeftStart && last.RightStart+last.RightCount == c.RightStart {
				last.LeftCount += c.LeftCount
				last.RightCount += c.RightCount
				return
			}
		}
		*a.result = append(*a.result, c)
		return
	}
	a.temp = append(a.temp, c)
}

func (a *accumulator) reset(result *[]Chunk) {
	a.result = result
	a.temp = a.temp[:0]
}
