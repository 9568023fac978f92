package colorconv

import "testing"

func TestFromRGBA(t *testing.T) {
	got := FromRGBA(255, 128, 0, 255)
	want := uint32(0xFFFF8000)
	if got != want {
		t.Fatalf("FromRGBA = %#x, want %#x", got, want)
	}
}

func TestFromRGBOpaque(t *testing.T) {
	got := FromRGB(0, 0, 0)
	want := uint32(0xFF000000)
	if got != want {
		t.Fatalf("FromRGB = %#x, want %#x", got, want)
	}
}

func TestFromRGBAClampsOutOfRange(t *testing.T) {
	got := FromRGBA(300, -10, 0, 255)
	want := uint32(0xFFFF0000)
	if got != want {
		t.Fatalf("FromRGBA clamping = %#x, want %#x", got, want)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	c1 := FromRGBA(0, 0, 0, 255)
	c2 := FromRGBA(255, 255, 255, 255)
	if got := Interpolate(c1, c2, 0); got != c1 {
		t.Fatalf("Interpolate(..,0) = %#x, want %#x", got, c1)
	}
	if got := Interpolate(c1, c2, 1); got != c2 {
		t.Fatalf("Interpolate(..,1) = %#x, want %#x", got, c2)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	c1 := FromRGBA(0, 0, 0, 255)
	c2 := FromRGBA(200, 0, 0, 255)
	mid := Interpolate(c1, c2, 0.5)
	r := byte(mid >> 16)
	if r != 100 {
		t.Fatalf("midpoint red channel = %d, want 100", r)
	}
}
