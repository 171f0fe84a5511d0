// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package id

import (
	"strings"
	"testing"
)

func TestNewIDLengthAndAlphabet(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 100; i++ {
		id := g.NewID()
		if len(id) != EntityIDLength {
			t.Fatalf("expected id length %d, got %d (%q)", EntityIDLength, len(id), id)
		}
		for _, c := range id {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("id %q contains character outside alphabet", id)
			}
		}
	}
}

func TestNewIDUniqueness(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
