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

// Package textdiff formats a [diff.Result] into the classic line-diff output formats: plain
// listing, unified, context, and ed/forward-ed scripts.
//
// Every formatter in this package is a pure function of a [diff.Result] (plus, for
// Unified/Context, a context size and a pair of [Labels]): none of them run the diff themselves, they only walk
// the Chunks the engine already produced and the atom-to-bytes mapping on [diff.Data].
package textdiff

import (
	"bytes"
	"fmt"

	"linediff.dev"
)

const missingNewline = "\\ No newline at end of file\n"

// Labels names the two sides of a diff for use in Unified/Context headers, e.g. "a/file.txt" and
// "b/file.txt" in the style of git, or arbitrary strings for any other source.
type Labels struct {
	Left, Right string
}

// Hunk is a windowed group of consecutive [diff.Chunk]s: one or more edits plus up to Context
// lines of unchanged surrounding atoms on each side, with adjacent hunks merged whenever their
// context windows would otherwise overlap.
type Hunk struct {
	LeftStart, LeftCount   int
	RightStart, RightCount int
	Chunks                 []diff.Chunk
}

// Hunks windows chunks into context-bounded groups suitable for unified/context-style output.
// Equal runs longer than 2*context are split: the trailing context lines close one hunk and the
// leading context lines open the next. Equal runs of 2*context or shorter merge the hunks on
// either side into one, matching the standard diff(1) hunk-merging behavior.
func Hunks(chunks []diff.Chunk, context int) []Hunk {
	segments := segment(chunks)

	var hunks []Hunk
	var cur []diff.Chunk
	haveEdit := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		first, last := cur[0], cur[len(cur)-1]
		h := Hunk{
			LeftStart:  first.LeftStart,
			RightStart: first.RightStart,
			Chunks:     cur,
		}
		h.LeftCount = last.LeftStart + last.LeftCount - first.LeftStart
		h.RightCount = last.RightStart + last.RightCount - first.RightStart
		hunks = append(hunks, h)
		cur = nil
	}

	for i, seg := range segments {
		if !seg.equal {
			cur = append(cur, seg.chunks...)
			haveEdit = true
			continue
		}
		eq := seg.chunks[0]
		switch {
		case !haveEdit:
			// Leading equal run before the first edit: only its trailing `context` atoms open the
			// next hunk.
			if c := trimLeading(eq, context); c.LeftCount > 0 || c.RightCount > 0 {
				cur = append(cur, c)
			}
		case i == len(segments)-1:
			// Trailing equal run after the last edit: only its leading `context` atoms close this
			// hunk.
			if c := trimTrailing(eq, context); c.LeftCount > 0 || c.RightCount > 0 {
				cur = append(cur, c)
			}
			flush()
			haveEdit = false
		case eq.LeftCount <= 2*context:
			// Short enough to bridge two edit groups into a single hunk.
			cur = append(cur, eq)
		default:
			cur = append(cur, trimTrailing(eq, context))
			flush()
			haveEdit = false
			if c := trimLeading(eq, context); c.LeftCount > 0 || c.RightCount > 0 {
				cur = append(cur, c)
			}
		}
	}
	if haveEdit {
		flush()
	}
	return hunks
}

// segment groups consecutive chunks into alternating equal-run and edit-group segments. By the
// engine's maximality invariant, no two adjacent chunks are both equal runs, so every equal chunk
// is its own segment.
type segmentGroup struct {
	equal  bool
	chunks []diff.Chunk
}

func segment(chunks []diff.Chunk) []segmentGroup {
	var segments []segmentGroup
	i := 0
	for i < len(chunks) {
		if chunks[i].Equal() {
			segments = append(segments, segmentGroup{equal: true, chunks: chunks[i : i+1]})
			i++
			continue
		}
		j := i
		for j < len(chunks) && !chunks[j].Equal() {
			j++
		}
		segments = append(segments, segmentGroup{chunks: chunks[i:j]})
		i = j
	}
	return segments
}

// trimLeading returns the last min(context, eq.LeftCount) atoms of an equal chunk eq.
func trimLeading(eq diff.Chunk, context int) diff.Chunk {
	k := min(context, eq.LeftCount)
	return diff.Chunk{
		LeftStart:  eq.LeftStart + eq.LeftCount - k,
		LeftCount:  k,
		RightStart: eq.RightStart + eq.RightCount - k,
		RightCount: k,
		Solved:     true,
	}
}

// trimTrailing returns the first min(context, eq.LeftCount) atoms of an equal chunk eq.
func trimTrailing(eq diff.Chunk, context int) diff.Chunk {
	k := min(context, eq.LeftCount)
	return diff.Chunk{
		LeftStart:  eq.LeftStart,
		LeftCount:  k,
		RightStart: eq.RightStart,
		RightCount: k,
		Solved:     true,
	}
}

// Plain renders result as a plain listing: one line per atom, prefixed ' ' (match), '-'
// (deletion), or '+' (insertion).
func Plain(result *diff.Result) []byte {
	var b bytes.Buffer
	for _, c := range result.Chunks {
		writeChunkLines(&b, result, c)
	}
	return b.Bytes()
}

// Unified renders result in unified-diff format (the "@@ -l,c +l,c @@" style consumed by patch(1)
// and git). context is the number of unchanged lines to show around each edit; labels.Left/Right
// (if non-empty) become the "--- "/"+++ " header lines.
func Unified(result *diff.Result, labels Labels, context int) []byte {
	var b bytes.Buffer
	writeLabels(&b, labels, "---", "+++")
	for _, h := range Hunks(result.Chunks, context) {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", hunkStart(h.LeftStart, h.LeftCount), h.LeftCount, hunkStart(h.RightStart, h.RightCount), h.RightCount)
		for _, c := range h.Chunks {
			writeChunkLines(&b, result, c)
		}
	}
	return b.Bytes()
}

// hunkStart converts a zero-based atom index into the 1-based line number diff(1) prints in a hunk
// header. An empty side (count == 0) prints the position itself rather than position+1: inserting
// before the first line reads "0,0", inserting after line 5 reads "5,0".
func hunkStart(start, count int) int {
	if count == 0 {
		return start
	}
	return start + 1
}

func writeLabels(b *bytes.Buffer, labels Labels, leftMarker, rightMarker string) {
	if labels.Left == "" && labels.Right == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", leftMarker, orDevNull(labels.Left))
	fmt.Fprintf(b, "%s %s\n", rightMarker, orDevNull(labels.Right))
}

func orDevNull(label string) string {
	if label == "" {
		return "/dev/null"
	}
	return label
}

func writeChunkLines(b *bytes.Buffer, result *diff.Result, c diff.Chunk) {
	switch c.Kind() {
	case diff.KindEqual:
		writeLines(b, result.Left, c.LeftStart, c.LeftCount, ' ')
	case diff.KindDelete:
		writeLines(b, result.Left, c.LeftStart, c.LeftCount, '-')
	case diff.KindInsert:
		writeLines(b, result.Right, c.RightStart, c.RightCount, '+')
	}
}

func writeLines(b *bytes.Buffer, d *diff.Data, start, count int, prefix byte) {
	for i := start; i < start+count; i++ {
		line := d.Bytes(i)
		b.WriteByte(prefix)
		b.Write(line)
		if len(line) == 0 || line[len(line)-1] != '\n' {
			b.WriteByte('\n')
			b.WriteString(missingNewline)
		}
	}
}
