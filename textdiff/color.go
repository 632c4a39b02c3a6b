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
	"bufio"
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the styles [Colorize] applies to each line class of a unified/context diff. The
// zero value renders every line unstyled.
type Colors struct {
	HunkHeader lipgloss.Style
	Match      lipgloss.Style
	Delete     lipgloss.Style
	Insert     lipgloss.Style
}

// DefaultColors is a ready-made style set to pass to [Colorize]: bold cyan
// hunk headers, plain matches, red deletions, green insertions — the same palette diff-highlight
// and most git pagers default to.
var DefaultColors = Colors{
	HunkHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	Delete:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	Insert:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// Colorize applies colors to the lines of a Unified or Context formatted diff, styling hunk
// headers ("@@ ... @@" and the "***************" separator), deletions, and insertions. It is
// line-oriented and format-agnostic: it classifies each line by its leading marker rather than
// re-parsing the diff, so it works on either [Unified] or [Context] output. Because of that, a
// "*** l,c ****" range line is left unstyled, "---" lines (label and range lines alike) take the
// deletion style, "+++" lines the insertion style, and "! " lines the deletion style on both
// sides of a context diff.
func Colorize(formatted []byte, colors Colors) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(formatted))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		out.WriteString(styleLine(line, colors))
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func styleLine(line string, colors Colors) string {
	switch {
	case strings.HasPrefix(line, "@@") || strings.HasPrefix(line, "***************"):
		return colors.HunkHeader.Render(line)
	case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "! "):
		return colors.Delete.Render(line)
	case strings.HasPrefix(line, "+"):
		return colors.Insert.Render(line)
	case strings.HasPrefix(line, " "):
		return colors.Match.Render(line)
	default:
		return line
	}
}
