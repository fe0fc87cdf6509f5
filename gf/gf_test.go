package gf

import "testing"

func TestNewRS8(t *testing.T) {
	f, err := New(8, 0x11D)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.FieldSize != 255 {
		t.Fatalf("FieldSize = %d, want 255", f.FieldSize)
	}
	for i := 0; i < f.FieldSize; i++ {
		x := f.LogOf[i]
		if int(f.ExpOf[x]) != i {
			t.Fatalf("ExpOf[LogOf[%d]] = %d, want %d", i, f.ExpOf[x], i)
		}
	}
	if f.ExpOf[f.FieldSize] != 0 {
		t.Fatalf("ExpOf[FieldSize] = %d, want 0", f.ExpOf[f.FieldSize])
	}
	if f.LogOf[0] != uint16(f.FieldSize) {
		t.Fatalf("LogOf[0] = %d, want %d", f.LogOf[0], f.FieldSize)
	}
}

func TestNewBCH4(t *testing.T) {
	f, err := New(4, 0x13)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.FieldSize != 15 {
		t.Fatalf("FieldSize = %d, want 15", f.FieldSize)
	}
}

func TestNewRejectsBadSymbolSize(t *testing.T) {
	if _, err := New(0, 0x11D); err == nil {
		t.Fatalf("expected error for symbol size 0")
	}
	if _, err := New(17, 0x11D); err == nil {
		t.Fatalf("expected error for symbol size 17")
	}
}

func TestNewRejectsNonPrimitive(t *testing.T) {
	// 0x11 is not primitive for m=8 (does not visit every nonzero
	// element before returning to 1).
	if _, err := New(8, 0x11); err == nil {
		t.Fatalf("expected error for non-primitive polynomial")
	}
}

func TestMulAndInv(t *testing.T) {
	f, err := New(8, 0x11D)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for a := 1; a < f.FieldSize; a++ {
		inv := f.Inv(uint16(a))
		if f.Mul(uint16(a), inv) != 1 {
			t.Fatalf("Mul(%d, Inv(%d))=%d, want 1", a, a, f.Mul(uint16(a), inv))
		}
	}
	if f.Mul(0, 5) != 0 || f.Mul(5, 0) != 0 {
		t.Fatalf("Mul with zero operand must short-circuit to zero")
	}
}

func TestMod(t *testing.T) {
	f, err := New(8, 0x11D)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, v := range []int{0, 254, 255, 256, 509, 510, 1000} {
		got := f.Mod(v)
		if got < 0 || got >= f.FieldSize {
			t.Fatalf("Mod(%d) = %d, out of [0,%d)", v, got, f.FieldSize)
		}
	}
}
