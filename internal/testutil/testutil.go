// Package testutil provides shared test helpers for seeded stores and
// deterministic clocks.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/store"
)

// FixedNow is the reference instant tests run at: 2024-05-20 UTC, inside the
// month the seed data's paid records fall in.
var FixedNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

// FixedClock returns a clock frozen at FixedNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// FixedToday is FixedNow as a calendar date.
func FixedToday() models.Date {
	return models.DateOf(FixedNow)
}

// SequentialIDs returns an ID generator producing prefix1, prefix2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// SeededStore creates a store loaded with the built-in sample portfolio,
// using a frozen clock and sequential IDs so tests are deterministic.
func SeededStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	base := []store.Option{
		store.WithClock(FixedClock()),
		store.WithIDGenerator(SequentialIDs("id")),
	}
	st := store.New(append(base, opts...)...)
	st.Load(store.Seed())
	return st
}
