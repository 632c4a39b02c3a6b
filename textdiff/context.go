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

package textdiff

import (
	"bytes"
	"fmt"

	"linediff.dev"
)

// Context renders result in the classic two-column context-diff format ("*** l,c ****" /
// "--- l,c ----"), the format selected by diff(1)'s -c/-C flags. context is the number of
// unchanged lines to show around each edit.
func Context(result *diff.Result, labels Labels, context int) []byte {
	var b bytes.Buffer
	writeLabels(&b, labels, "***", "---")
	for _, h := range Hunks(result.Chunks, context) {
		groups := segment(h.Chunks)
		b.WriteString("***************\n")
		first, last := contextRange(h.LeftStart, h.LeftCount)
		fmt.Fprintf(&b, "*** %d,%d ****\n", first, last)
		writeContextSide(&b, result.Left, groups, true)
		first, last = contextRange(h.RightStart, h.RightCount)
		fmt.Fprintf(&b, "--- %d,%d ----\n", first, last)
		writeContextSide(&b, result.Right, groups, false)
	}
	return b.Bytes()
}

// contextRange converts a zero-based (start, count) atom range into the 1-based "first,last" pair
// the classic context-diff header prints. An empty side (count == 0) prints start,start (e.g.
// "0,0" for an insertion at the very beginning), matching diff(1)'s own convention.
func contextRange(start, count int) (first, last int) {
	if count == 0 {
		return start, start
	}
	return start + 1, start + count
}

// writeContextSide renders one side (left if leftSide, else right) of a context-diff hunk, one
// group at a time. An equal group gets the "  " marker; an edit group gets "- "/"+ "/"! " depending
// on whether it edits only the left, only the right, or both (a "replace") — computed once per
// group so the classification doesn't depend on which side is rendered first.
func writeContextSide(b *bytes.Buffer, d *diff.Data, groups []segmentGroup, leftSide bool) {
	for _, g := range groups {
		if g.equal {
			c := g.chunks[0]
			writeContextLines(b, d, chunkStart(c, leftSide), c.LeftCount, "  ")
			continue
		}

		hasDelete, hasInsert := false, false
		for _, c := range g.chunks {
			if c.Delete() {
				hasDelete = true
			}
			if c.Insert() {
				hasInsert = true
			}
		}
		marker := "! "
		if hasDelete && !hasInsert {
			marker = "- "
		} else if hasInsert && !hasDelete {
			marker = "+ "
		}

		start, count, any := 0, 0, false
		for _, c := range g.chunks {
			n := c.LeftCount
			if !leftSide {
				n = c.RightCount
			}
			if n == 0 {
				continue
			}
			if !any {
				start = chunkStart(c, leftSide)
				any = true
			}
			count += n
		}
		if any {
			writeContextLines(b, d, start, count, marker)
		}
	}
}

func chunkStart(c diff.Chunk, leftSide bool) int {
	if leftSide {
		return c.LeftStart
	}
	return c.RightStart
}

func writeContextLines(b *bytes.Buffer, d *diff.Data, start, count int, marker string) {
	for i := start; i < start+count; i++ {
		line := d.Bytes(i)
		b.WriteString(marker)
		b.Write(line)
		if len(line) == 0 || line[len(line)-1] != '\n' {
			b.WriteByte('\n')
			b.WriteString(missingNewline)
		}
	}
}
