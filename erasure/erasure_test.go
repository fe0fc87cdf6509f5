package erasure

import "testing"

func TestNewDefaultsCapacityToNumRoots(t *testing.T) {
	s := New(8, 0)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if cap(s.positions) != 8 {
		t.Fatalf("cap = %d, want 8", cap(s.positions))
	}
}

func TestFromPositions(t *testing.T) {
	in := []uint32{3, 7, 11}
	s := FromPositions(8, in)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	got := s.Positions()
	for i, v := range in {
		if got[i] != v {
			t.Fatalf("Positions()[%d] = %d, want %d", i, got[i], v)
		}
	}
	for i := range in {
		if s.Corrections()[i] != 0 {
			t.Fatalf("Corrections()[%d] = %d, want 0", i, s.Corrections()[i])
		}
	}
}

func TestAddGrowsAndTracksOrder(t *testing.T) {
	s := New(2, 0)
	for i := uint32(0); i < 10; i++ {
		if n := s.Add(i); n != int(i)+1 {
			t.Fatalf("Add returned %d, want %d", n, i+1)
		}
	}
	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}
	for i, v := range s.Positions() {
		if v != uint32(i) {
			t.Fatalf("Positions()[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestSetCorrectionAndReset(t *testing.T) {
	s := FromPositions(4, []uint32{1, 2, 3})
	s.SetCorrection(1, 0xAB)
	if s.Corrections()[1] != 0xAB {
		t.Fatalf("correction not recorded")
	}

	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", s.Len())
	}
	s.Add(42)
	if s.Len() != 1 || s.Positions()[0] != 42 {
		t.Fatalf("Set not usable after Reset")
	}
}

func TestGrowToPolicy(t *testing.T) {
	base := make([]uint32, 4, 4)
	grown := growTo(base, 5)
	if cap(grown) != 36 {
		t.Fatalf("cap = %d, want 36 (4+32)", cap(grown))
	}

	base2 := make([]uint32, 100, 100)
	grown2 := growTo(base2, 101)
	if cap(grown2) != 200 {
		t.Fatalf("cap = %d, want 200 (100*2)", cap(grown2))
	}
}
