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

// linediff compares two files and prints their differences, in the style of diff(1). It is a thin
// collaborator around the linediff.dev engine: it memory-maps both inputs, runs the default
// myers -> patience -> myers_divide algorithm tree, and pipes the result through a formatter from
// linediff.dev/textdiff.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"linediff.dev"
	"linediff.dev/internal/mmapfile"
	"linediff.dev/textdiff"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "linediff: %v\n", err)
		os.Exit(2)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "linediff",
		Usage:     "compare two files line by line",
		ArgsUsage: "old new",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "u", Usage: "output in unified format with 3 lines of context"},
			&cli.IntFlag{Name: "U", Usage: "output in unified format with N lines of context", Value: -1},
			&cli.BoolFlag{Name: "c", Usage: "output in context format with 3 lines of context"},
			&cli.IntFlag{Name: "C", Usage: "output in context format with N lines of context", Value: -1},
			&cli.BoolFlag{Name: "e", Usage: "output an ed script"},
			&cli.BoolFlag{Name: "f", Usage: "output an ed script in forward order"},
			&cli.BoolFlag{Name: "color", Usage: "force-enable colored output"},
			&cli.BoolFlag{Name: "stat", Usage: "print a summary of insertions/deletions instead of the full diff"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 2 {
		return fmt.Errorf("expected exactly 2 file arguments, got %d", args.Len())
	}
	oldPath, newPath := args.Get(0), args.Get(1)

	oldFile, err := mmapfile.Open(oldPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", oldPath, err)
	}
	defer oldFile.Close()

	newFile, err := mmapfile.Open(newPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", newPath, err)
	}
	defer newFile.Close()

	result := diff.Diff(diff.DefaultConfig(), oldFile.Bytes(), newFile.Bytes())
	if result.Err != nil {
		return result.Err
	}

	if cmd.Bool("stat") {
		fmt.Fprintln(os.Stdout, statLine(result))
		return nil
	}

	labels := textdiff.Labels{Left: oldPath, Right: newPath}
	out := render(cmd, result, labels)

	if cmd.Bool("color") {
		out = textdiff.Colorize(out, textdiff.DefaultColors)
	}
	os.Stdout.Write(out)
	return nil
}

func render(cmd *cli.Command, result *diff.Result, labels textdiff.Labels) []byte {
	switch {
	case cmd.Bool("e"):
		return textdiff.Ed(result)
	case cmd.Bool("f"):
		return textdiff.ForwardEd(result)
	case cmd.Bool("c") || cmd.Int("C") >= 0:
		return textdiff.Context(result, labels, contextLines(cmd, "C"))
	default:
		// -u (explicit or implied default, matching diff(1) when no format flag is given).
		return textdiff.Unified(result, labels, contextLines(cmd, "U"))
	}
}

func contextLines(cmd *cli.Command, flag string) int {
	if n := cmd.Int(flag); n >= 0 {
		return int(n)
	}
	return 3
}

func statLine(result *diff.Result) string {
	var ins, del int
	for _, c := range result.Chunks {
		if c.Insert() {
			ins += c.RightCount
		}
		if c.Delete() {
			del += c.LeftCount
		}
	}
	return fmt.Sprintf("%s insertion(s), %s deletion(s)", humanize.Comma(int64(ins)), humanize.Comma(int64(del)))
}
