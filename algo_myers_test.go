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

import "testing"

func TestAlgoMyersRequestsFallbackOverBudget(t *testing.T) {
	st, _ := newTestState([]byte("a\nb\nc\nd\ne\n"), []byte("x\ny\nz\nw\nv\n"))
	cfg := &AlgoConfig{Impl: AlgoMyers, PermittedStateSize: 1}
	if err := AlgoMyers(cfg, st); err != errUseFallback {
		t.Errorf("AlgoMyers with PermittedStateSize=1: err = %v, want errUseFallback", err)
	}
}

func TestAlgoMyersUnboundedNeverFallsBack(t *testing.T) {
	st, result := newTestState([]byte("a\nb\nc\nd\ne\n"), []byte("x\ny\nz\nw\nv\n"))
	cfg := &AlgoConfig{Impl: AlgoMyers}
	if err := AlgoMyers(cfg, st); err != nil {
		t.Fatalf("AlgoMyers unbounded: err = %v, want nil", err)
	}
	if len(*result) == 0 {
		t.Errorf("expected chunks to be produced")
	}
}

func TestAlgoMyersEmptyInputs(t *testing.T) {
	st, result := newTestState(nil, nil)
	cfg := &AlgoConfig{Impl: AlgoMyers}
	if err := AlgoMyers(cfg, st); err != nil {
		t.Fatalf("AlgoMyers: err = %v, want nil", err)
	}
	if len(*result) != 0 {
		t.Errorf("empty inputs produced chunks: %v", *result)
	}
}

func TestAlgoMyersEquivalentToNoneOnEqualInputs(t *testing.T) {
	st, result := newTestState([]byte("a\nb\nc\n"), []byte("a\nb\nc\n"))
	cfg := &AlgoConfig{Impl: AlgoMyers}
	if err := AlgoMyers(cfg, st); err != nil {
		t.Fatalf("AlgoMyers: err = %v, want nil", err)
	}
	if len(*result) != 1 || !(*result)[0].Equal() || (*result)[0].LeftCount != 3 {
		t.Errorf("AlgoMyers on equal inputs = %v, want single equal chunk of length 3", *result)
	}
}
