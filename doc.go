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

// Package diff implements a minimal-edit, line-oriented diff engine over byte buffers.
//
// The engine atomizes both inputs (by default, one atom per line via [AtomizeLines]), then composes
// a sequence of diff algorithms into a single fallback/subdivision tree: a [Config] names a root
// [AlgoConfig], each of which may subdivide a problem into smaller [Chunk]s handled by an inner
// algorithm, or bail out to a fallback algorithm entirely. [DefaultConfig] wires the reference
// composition: full Myers first while its working state fits a size budget, then Patience,
// falling back to a linear-space Myers search when no common-unique atoms can be found, recursing into full Myers once a midpoint is found, and falling back further
// to the trivial algorithm when the recursion budget is exhausted.
//
// The result of [Diff] is a flat, ordered list of [Chunk]s: contiguous runs that are either equal, a
// deletion, or an insertion. This is the representation output formatters need to emit unified,
// context, or ed-style diffs without re-scanning the inputs.
//
// For line-by-line formatting of a [Result] into unified/context/ed diffs, see
// [linediff.dev/textdiff].
//
// [linediff.dev/textdiff]: https://pkg.go.dev/linediff.dev/textdiff
package diff
