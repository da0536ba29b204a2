// Package testutil holds assertions shared by the roc test suites.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal fails the test if got and want differ by more than
// relTol relative to want (absolute when want is 0).
func AssertFloat64Equal(t *testing.T, name string, got, want, relTol float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if want != 0 {
		diff /= math.Abs(want)
	}
	if math.IsNaN(got) || diff > relTol {
		t.Errorf("%s = %g, want %g (tolerance %g)", name, got, want, relTol)
	}
}

// AssertNonDecreasing fails the test if any element of values is smaller than its predecessor.
func AssertNonDecreasing(t *testing.T, name string, values []int) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Errorf("%s[%d] = %d < %s[%d] = %d", name, i, values[i], name, i-1, values[i-1])
			return
		}
	}
}
