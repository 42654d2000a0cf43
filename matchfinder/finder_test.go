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

package matchfinder

import (
	"bytes"
	"testing"
)

func TestFindMatchFindsRepeat(t *testing.T) {
	data := []byte("abcabcabc")
	f := NewFinder(data, 1<<16, 32, 64)

	var found []struct {
		dist, length uint32
		ok           bool
	}
	for f.Pos() < len(data) {
		dist, length, ok := f.FindMatch()
		found = append(found, struct {
			dist, length uint32
			ok           bool
		}{dist, length, ok})
	}

	if !found[3].ok {
		t.Fatalf("position 3 (start of second \"abc\") should have found a match")
	}
	if found[3].dist != 2 {
		t.Errorf("position 3: dist = %d, want 2", found[3].dist)
	}
}

func TestFindMatchNoMatchOnFirstBytes(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 3)
	f := NewFinder(data, 1<<16, 32, 64)
	_, _, ok := f.FindMatch()
	if ok {
		t.Fatal("first position can never have a preceding match")
	}
}

func TestFindMatchRespectsDictSize(t *testing.T) {
	data := append(append([]byte("xyz"), bytes.Repeat([]byte{0}, 100)...), []byte("xyz")...)
	f := NewFinder(data, 10, 32, 64) // dictSize far smaller than the gap back to the first "xyz"

	for f.Pos() < len(data)-1 {
		dist, _, ok := f.FindMatch()
		if ok && dist >= 10 {
			t.Fatalf("FindMatch returned dist=%d exceeding dictSize=10", dist)
		}
	}
}

func TestSkipAdvancesPosition(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 10)
	f := NewFinder(data, 1<<16, 32, 64)
	f.FindMatch()
	f.Skip(5)
	if f.Pos() != 6 {
		t.Fatalf("Pos() = %d, want 6", f.Pos())
	}
}
