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

// defaultMyersStateSize bounds the quadratic Myers algorithm to 8 MiB of working state before it
// defers to Patience. Measured in bytes of the v-array, not atom count, since that's what actually
// gets allocated.
const defaultMyersStateSize = 1024 * 1024 * 8

var (
	defaultMyers = &AlgoConfig{
		Impl:               AlgoMyers,
		PermittedStateSize: defaultMyersStateSize,
	}

	defaultPatience = &AlgoConfig{
		Impl: AlgoPatience,
	}

	defaultMyersDivide = &AlgoConfig{
		Impl: AlgoMyersDivide,
		// Once a mid-snake splits the problem, each half is small enough to retry in full.
		Inner: defaultMyers,
		// Fallback nil implies AlgoNone.
	}
)

func init() {
	defaultMyers.Fallback = defaultPatience
	// When Patience finds no common-unique atom, fall back to linear-space divide-and-conquer.
	defaultPatience.Fallback = defaultMyersDivide
	// Patience recurses into itself for chunks a found anchor leaves unsolved.
	defaultPatience.Inner = defaultPatience
}

// DefaultConfig is the reference algorithm tree: try full Myers first (optimal, but quadratic
// space), fall back to Patience when the input is too large, and fall back further to linear-space
// divide-and-conquer Myers when Patience can't find a common-unique atom to anchor on.
//
//	Myers (≤ 8 MiB state)
//	  └─ fallback → Patience
//	                  ├─ inner    → Patience (recurse on each unsolved half)
//	                  └─ fallback → Myers Divide (linear space)
//	                                  └─ inner → Myers (now small enough to fit in 8 MiB)
func DefaultConfig() Config {
	return Config{
		AtomizeFunc: AtomizeLines,
		Algo:        defaultMyers,
	}
}
