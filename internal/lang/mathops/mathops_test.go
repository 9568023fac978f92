package mathops

import (
	"math"
	"math/rand"
	"testing"
)

func TestUnary(t *testing.T) {
	v, ok := Unary("Sqrt", 9)
	if !ok || v != 3 {
		t.Fatalf("Sqrt(9) = %v,%v", v, ok)
	}
	if _, ok := Unary("NoSuchOp", 1); ok {
		t.Fatal("expected unknown op to fail")
	}
}

func TestBinary(t *testing.T) {
	v, ok := Binary("Add", 2, 3, nil)
	if !ok || v != 5 {
		t.Fatalf("Add(2,3) = %v,%v", v, ok)
	}
	v, ok = Binary("Max", 2, 3, nil)
	if !ok || v != 3 {
		t.Fatalf("Max(2,3) = %v,%v", v, ok)
	}
}

func TestRandomIsWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v, ok := Binary("Random", 10, 20, r)
		if !ok || v < 10 || v > 20 {
			t.Fatalf("Random(10,20) = %v,%v out of bounds", v, ok)
		}
	}
}

func TestTernary(t *testing.T) {
	if v, _ := Ternary("Limit", 50, 0, 10); v != 10 {
		t.Fatalf("Limit(50,0,10) = %v, want 10", v)
	}
	if v, _ := Ternary("Interpolate", 0, 10, 0.5); v != 5 {
		t.Fatalf("Interpolate(0,10,0.5) = %v, want 5", v)
	}
}

func TestConstants(t *testing.T) {
	if math.Abs(PI-math.Pi) > 1e-12 {
		t.Fatalf("PI = %v", PI)
	}
	if True != 1.0 || False != 0.0 {
		t.Fatalf("True/False constants wrong")
	}
}
