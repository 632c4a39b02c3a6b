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

import "errors"

// ErrOutOfMemory is returned (wrapped in a [Result]'s Err field) when an algorithm could not
// allocate its working state. The Go runtime panics on genuine allocation failure rather than
// returning an error, and none of the algorithms in this package return it (Myers full requests
// its fallback when its size arithmetic overflows); it is available to other [AlgoFunc]s and
// mirrors the reference implementation's DIFF_RC_ENOMEM.
var ErrOutOfMemory = errors.New("diff: out of memory")

// ErrInvalidInput is returned when a [Config] is missing required fields (e.g. no AtomizeFunc).
var ErrInvalidInput = errors.New("diff: invalid input")

// errUseFallback is the internal-only "fall back to my configured alternate" signal. It must never
// escape the orchestrator.
var errUseFallback = errors.New("diff: use fallback")

// AlgoFunc is the contract every diff algorithm implements: given the bounded subsection pair
// exposed by st, it either streams solved and/or unsolved chunks into st ([State.AddSolved],
// [State.AddUnsolved]), or returns errUseFallback to request cfg's configured fallback, or returns
// ErrOutOfMemory/ErrInvalidInput to abort the whole diff.
//
// AlgoNone, AlgoMyers, AlgoMyersDivide, and AlgoPatience are the algorithms this package provides.
type AlgoFunc func(cfg *AlgoConfig, st *State) error

// AlgoConfig is a node in the algorithm tree: an algorithm implementation plus its fallback (used
// when the algorithm declines) and inner algorithm (used to resolve the unsolved chunks it leaves
// behind).
//
// A nil Fallback implies the trivial algorithm ([AlgoNone]). The tree may be cyclic (e.g. Patience's
// Inner pointing back at itself), since it is only ever walked by recursion bounded by
// [Config.MaxRecursionDepth].
type AlgoConfig struct {
	Impl AlgoFunc

	// PermittedStateSize bounds the working memory [AlgoMyers] is allowed to use, in bytes. It is
	// ignored by the other algorithms. Zero means unlimited.
	PermittedStateSize int

	// Inner resolves chunks this algorithm leaves unsolved. Nil means [AlgoNone].
	Inner *AlgoConfig

	// Fallback is used when Impl returns "use fallback" (e.g. Patience finding no common-unique
	// atoms, or Myers-full exceeding PermittedStateSize). Nil means [AlgoNone].
	Fallback *AlgoConfig
}
