// Package testutil provides shared assertion helpers for the chesscore-go
// test suites.
package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal compares got and want with cmp.Diff and reports any difference.
func Equal(t *testing.T, got, want interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// NoError fails the test if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorIs fails the test unless errors.Is(err, target).
func ErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}

// Error fails the test if err is nil.
func Error(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

// True fails the test if cond is false.
func True(t *testing.T, cond bool, format string, args ...interface{}) {
	t.Helper()
	if !cond {
		t.Errorf(format, args...)
	}
}

// False fails the test if cond is true.
func False(t *testing.T, cond bool, format string, args ...interface{}) {
	t.Helper()
	if cond {
		t.Errorf(format, args...)
	}
}
