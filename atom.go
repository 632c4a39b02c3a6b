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

import "bytes"

// Atom is the indivisible unit of comparison: a byte range [Start, Start+Len) within a root data
// buffer, plus a cheap rolling hash of its content.
//
// An Atom never owns its bytes; it only makes sense relative to the buffer of the [Data] it came
// from. Patience-diff scratch state is deliberately not stored here (AlgoPatience keeps it in
// slices allocated per call, see markUniqueInBoth in algo_patience.go): the same Atom is revisited by nested recursion frames on disjoint
// subsections, and per-frame scratch would either need resetting on every frame or would leak
// across frames.
type Atom struct {
	Start int
	Len   int
	hash  uint32
}

// bytes returns the atom's content, read from buf (the root buffer it was atomized from).
func (a Atom) bytes(buf []byte) []byte {
	return buf[a.Start : a.Start+a.Len]
}

// same reports whether a and b, taken from buffers bufA and bufB respectively, have equal hashes,
// equal lengths, and equal bytes, in that (cheapest-first) order.
func same(a Atom, bufA []byte, b Atom, bufB []byte) bool {
	return a.hash == b.hash && a.Len == b.Len && bytes.Equal(a.bytes(bufA), b.bytes(bufB))
}

// hashLine computes the rolling hash used for line atoms: h := 0; h := h*23 + b for every byte b.
func hashLine(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = h*23 + uint32(c)
	}
	return h
}
