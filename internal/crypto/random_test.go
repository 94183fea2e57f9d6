package crypto

import (
	"errors"
	"testing"
)

func TestRandomIndexWithinBound(t *testing.T) {
	for _, bound := range []int{1, 2, 10, 94} {
		for i := 0; i < 100; i++ {
			n, err := RandomIndex(bound)
			if err != nil {
				t.Fatalf("RandomIndex(%d) unexpected error: %v", bound, err)
			}
			if n < 0 || n >= bound {
				t.Fatalf("RandomIndex(%d) = %d, out of range", bound, n)
			}
		}
	}
}

func TestRandomIndexBoundOne(t *testing.T) {
	n, err := RandomIndex(1)
	if err != nil {
		t.Fatalf("RandomIndex(1) unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("RandomIndex(1) = %d, want 0", n)
	}
}

func TestRandomIndexInvalidBound(t *testing.T) {
	for _, bound := range []int{0, -1} {
		if _, err := RandomIndex(bound); !errors.Is(err, ErrInvalidBound) {
			t.Errorf("RandomIndex(%d) error = %v, want ErrInvalidBound", bound, err)
		}
	}
}

func TestRandomIndexCoversRange(t *testing.T) {
	// Over enough draws every value of a small bound should appear.
	const bound = 4
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n, err := RandomIndex(bound)
		if err != nil {
			t.Fatalf("RandomIndex() unexpected error: %v", err)
		}
		seen[n] = true
	}
	for v := 0; v < bound; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn in 500 samples", v)
		}
	}
}
