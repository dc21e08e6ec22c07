package sparse

import (
	"testing"
)

func TestSet_Basic(t *testing.T) {
	s := New(31)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := New(31)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(2) // duplicate must not disturb order
	s.Insert(1)

	expected := []uint32{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSet_OutOfRangeContains(t *testing.T) {
	s := New(4)
	if s.Contains(100) {
		t.Error("value beyond capacity should not be contained")
	}
}

func TestSet_ReuseAfterClear(t *testing.T) {
	s := New(8)
	for round := 0; round < 3; round++ {
		s.Clear()
		for v := uint32(0); v < 8; v++ {
			if !s.Insert(v) {
				t.Fatalf("round %d: insert %d should succeed after clear", round, v)
			}
		}
		if s.Len() != 8 {
			t.Fatalf("round %d: len should be 8, got %d", round, s.Len())
		}
	}
}
