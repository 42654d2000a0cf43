/*
Copyright 2026 The gocompress Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lzmastate

import "testing"

func TestStateClosure(t *testing.T) {
	for s := State(0); s < NumStates; s++ {
		transitions := []State{
			s.AfterLiteral(),
			s.AfterMatch(),
			s.AfterLongRep(),
			s.AfterShortRep(),
		}
		for _, next := range transitions {
			if next >= NumStates {
				t.Fatalf("state %d transitioned out of range: %d", s, next)
			}
		}
	}
}

func TestIsLiteralState(t *testing.T) {
	for s := State(0); s < NumStates; s++ {
		want := s < 7
		if got := s.IsLiteralState(); got != want {
			t.Errorf("state %d: IsLiteralState() = %v, want %v", s, got, want)
		}
	}
}

func TestAfterLiteralSpecificValues(t *testing.T) {
	cases := map[State]State{
		0: 0, 1: 0, 2: 0, 3: 0,
		4: 1, 5: 2, 6: 3, 7: 4, 8: 5, 9: 6,
		10: 4, 11: 5,
	}
	for s, want := range cases {
		if got := s.AfterLiteral(); got != want {
			t.Errorf("AfterLiteral(%d) = %d, want %d", s, got, want)
		}
	}
}
