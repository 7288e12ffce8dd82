// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for epinet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/epinet/core"
)

// Common vertex IDs used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3

	VNegative = -1
)

// starPlusTriangleEdge is the 4-vertex fixture {0-1, 0-2, 0-3, 1-2}.
var starPlusTriangleEdge = [][2]int{{V0, V1}, {V0, V2}, {V0, V3}, {V1, V2}}

// NewStarPlusTriangleEdge RETURNS the 4-vertex fixture with int payloads.
func NewStarPlusTriangleEdge(t *testing.T) *core.Graph[int] {
	t.Helper()
	g, err := core.FromEdges[int](4, starPlusTriangleEdge)
	MustErrorNil(t, err, "FromEdges(starPlusTriangleEdge)")

	return g
}

// MustErrorNil FAILS the test immediately when err != nil.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustErrorIs FAILS the test immediately unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", ctx, target, err)
	}
}

// MustEqualInt FAILS the test immediately when got != want.
func MustEqualInt(t *testing.T, got, want int, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", ctx, got, want)
	}
}

// MustEqualBool FAILS the test immediately when got != want.
func MustEqualBool(t *testing.T, got, want bool, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}

// MustEqualInts FAILS the test immediately when the slices differ (order-sensitive).
func MustEqualInts(t *testing.T, got, want []int, ctx string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}
