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

// Data is either a root, owning the full atom array for one side of a diff, or a subsection that
// borrows a contiguous range of an ancestor root's atoms.
//
// Every subsection carries a reference to the root so that atom indices can be resolved globally:
// within a subsection, an index into Atoms() is a local index, while local + the subsection's
// Offset() is the global index into the root's atom array. Root and subsection share the same
// backing array (subsections are plain Go slices of the root's atoms), so there is never a need to
// copy atoms when recursing.
type Data struct {
	buf    []byte // the full byte buffer this side was atomized from (root only; subsections read through root)
	atoms  []Atom // this Data's view of the atoms: the full array for a root, a sub-slice for a subsection
	root   *Data  // the owning root; root.root == root
	offset int    // index of atoms[0] within root.atoms
}

// newRoot creates a root Data over buf. Atoms are populated by an [AtomizeFunc].
func newRoot(buf []byte) *Data {
	d := &Data{buf: buf}
	d.root = d
	return d
}

// subsection returns a new Data borrowing the atoms [start, start+count) of d (d may itself be a
// subsection; the result's root is always d's root).
func (d *Data) subsection(start, count int) *Data {
	return &Data{
		buf:    d.root.buf,
		atoms:  d.atoms[start : start+count],
		root:   d.root,
		offset: d.offset + start,
	}
}

// Len returns the number of atoms in this view.
func (d *Data) Len() int { return len(d.atoms) }

// Atom returns the i-th atom in this view (i is a local index, 0 <= i < d.Len()).
func (d *Data) Atom(i int) Atom { return d.atoms[i] }

// Bytes returns the raw content of the i-th atom in this view.
func (d *Data) Bytes(i int) []byte { return d.atoms[i].bytes(d.root.buf) }

// GlobalIndex converts a local atom index in this view to a global index into the root's atom
// array. Formatters use this to map chunks back to line numbers.
func (d *Data) GlobalIndex(i int) int { return d.offset + i }

// Root returns the root Data that owns the full atom array for this side.
func (d *Data) Root() *Data { return d.root }

// Same reports whether the i-th atom of d and the j-th atom of other are byte-identical.
func (d *Data) Same(i int, other *Data, j int) bool {
	return same(d.atoms[i], d.root.buf, other.atoms[j], other.root.buf)
}
