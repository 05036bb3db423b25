package utils

import (
	"testing"

	"github.com/starkstream/node/core/felt"
)

// HexToFelt parses a hex string into a felt, failing the test on error.
func HexToFelt(t testing.TB, hex string) *felt.Felt {
	t.Helper()
	f, err := new(felt.Felt).SetString(hex)
	if err != nil {
		t.Fatalf("parse felt %q: %v", hex, err)
	}
	return f
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
