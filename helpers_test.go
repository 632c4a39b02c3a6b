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

// newTestState atomizes left/right by line and returns a State spanning the whole of both sides,
// ready to be handed directly to an AlgoFunc under test, plus the chunk slice its AddSolved /
// AddUnsolved calls will append to.
func newTestState(left, right []byte) (*State, *[]Chunk) {
	l, r := newRoot(left), newRoot(right)
	atomizeLines(l)
	atomizeLines(r)

	result := &[]Chunk{}
	st := &State{
		left:  l.subsection(0, l.Len()),
		right: r.subsection(0, r.Len()),
		depth: defaultMaxRecursionDepth,
	}
	st.acc.reset(result)
	return st, result
}

// reconstructLeft and reconstructRight rebuild the left and right byte strings a chunk sequence claims to cover, using
// left/right as the backing roots. Used to check the coverage and patchability invariants without
// depending on a specific chunk sequence.
func reconstructLeft(left *Data, chunks []Chunk) []byte {
	var out []byte
	for _, c := range chunks {
		for i := c.LeftStart; i < c.LeftStart+c.LeftCount; i++ {
			out = append(out, left.Bytes(i)...)
		}
	}
	return out
}

func reconstructRight(right *Data, chunks []Chunk) []byte {
	var out []byte
	for _, c := range chunks {
		for i := c.RightStart; i < c.RightStart+c.RightCount; i++ {
			out = append(out, right.Bytes(i)...)
		}
	}
	return out
}
