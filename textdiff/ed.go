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

// edCommand is one a/c/d command derived from a maximal run of non-equal chunks: the old-file
// span it deletes (if any) and the new-file span it inserts (if any).
type edCommand struct {
	leftStart, leftCount   int
	rightStart, rightCount int
}

func edCommands(chunks []diff.Chunk) []edCommand {
	var cmds []edCommand
	for _, seg := range segment(chunks) {
		if seg.equal {
			continue
		}
		first, last := seg.chunks[0], seg.chunks[len(seg.chunks)-1]
		cmd := edCommand{leftStart: first.LeftStart, rightStart: first.RightStart}
		cmd.leftCount = last.LeftStart + last.LeftCount - first.LeftStart
		cmd.rightCount = last.RightStart + last.RightCount - first.RightStart
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (c edCommand) write(b *bytes.Buffer, right *diff.Data) {
	a, n := c.leftStart+1, c.leftCount
	switch {
	case n > 0 && c.rightCount > 0:
		if n == 1 {
			fmt.Fprintf(b, "%dc\n", a)
		} else {
			fmt.Fprintf(b, "%d,%dc\n", a, a+n-1)
		}
		writeEdText(b, right, c.rightStart, c.rightCount)
	case n > 0:
		if n == 1 {
			fmt.Fprintf(b, "%dd\n", a)
		} else {
			fmt.Fprintf(b, "%d,%dd\n", a, a+n-1)
		}
	case c.rightCount > 0:
		fmt.Fprintf(b, "%da\n", c.leftStart)
		writeEdText(b, right, c.rightStart, c.rightCount)
	}
}

func writeEdText(b *bytes.Buffer, d *diff.Data, start, count int) {
	for i := start; i < start+count; i++ {
		line := d.Bytes(i)
		b.Write(line)
		if len(line) == 0 || line[len(line)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	b.WriteString(".\n")
}

// Ed renders result as an ed(1) script ("diff -e" format): commands are emitted from the last
// edit to the first so that line numbers, which always refer to positions in the original (left)
// file, stay valid as ed applies each command in turn.
func Ed(result *diff.Result) []byte {
	var b bytes.Buffer
	cmds := edCommands(result.Chunks)
	for i := len(cmds) - 1; i >= 0; i-- {
		cmds[i].write(&b, result.Right)
	}
	return b.Bytes()
}

// ForwardEd renders result in "diff -f" format: the same a/c/d commands as [Ed], but left in
// forward (top-to-bottom) order. The output is not directly replayable by ed(1) (earlier commands
// shift the line numbers later ones refer to); it exists for tools that want the edit script in
// source order and apply their own bookkeeping.
func ForwardEd(result *diff.Result) []byte {
	var b bytes.Buffer
	for _, cmd := range edCommands(result.Chunks) {
		cmd.write(&b, result.Right)
	}
	return b.Bytes()
}
