package lru

import "testing"

func TestIndexRecencyOrder(t *testing.T) {
	ix := NewIndex(4)

	step := func(want int) {
		t.Helper()
		if got := ix.UseLRU(); got != want {
			t.Errorf("UseLRU() = %d, want %d", got, want)
		}
	}

	step(0)
	step(1)
	step(2)
	step(3)
	step(0)

	ix.Use(0)
	step(1)

	ix.Use(3)
	for _, want := range []int{2, 0, 1, 3, 2, 0, 1} {
		step(want)
	}
}

func TestIndexSingle(t *testing.T) {
	ix := NewIndex(1)
	for i := 0; i < 3; i++ {
		if got := ix.UseLRU(); got != 0 {
			t.Errorf("UseLRU() = %d, want 0", got)
		}
	}
	ix.Use(0)
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
}

func TestNewIndexPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero-sized index")
		}
	}()
	NewIndex(0)
}
