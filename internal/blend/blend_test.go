package blend

import "testing"

func pixel(r, g, b, a uint8) []uint8 {
	return []uint8{r, g, b, a}
}

func TestSourceOverOpaque(t *testing.T) {
	dst := pixel(255, 255, 255, 255)
	src := pixel(255, 0, 0, 255)

	SourceOver(dst, src, 1)

	want := pixel(255, 0, 0, 255)
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestSourceOverGlobalOpacity(t *testing.T) {
	// Opaque black over opaque white at half opacity gives mid gray.
	dst := pixel(255, 255, 255, 255)
	src := pixel(0, 0, 0, 255)

	SourceOver(dst, src, 0.5)

	for c := 0; c < 3; c++ {
		if dst[c] < 126 || dst[c] > 129 {
			t.Errorf("channel %d = %d, want about 128", c, dst[c])
		}
	}
	if dst[3] != 255 {
		t.Errorf("alpha = %d, want 255", dst[3])
	}
}

func TestSourceOverTransparentSource(t *testing.T) {
	dst := pixel(10, 20, 30, 255)
	src := pixel(200, 200, 200, 0)

	SourceOver(dst, src, 1)

	want := pixel(10, 20, 30, 255)
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want unchanged %v", dst, want)
		}
	}
}

func TestSourceOverZeroOpacity(t *testing.T) {
	dst := pixel(10, 20, 30, 255)
	src := pixel(255, 0, 0, 255)

	SourceOver(dst, src, 0)

	want := pixel(10, 20, 30, 255)
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want unchanged %v", dst, want)
		}
	}
}

func TestSourceOverPartialAlpha(t *testing.T) {
	// Half-transparent red over opaque white.
	dst := pixel(255, 255, 255, 255)
	src := pixel(255, 0, 0, 128)

	SourceOver(dst, src, 1)

	if dst[0] != 255 {
		t.Errorf("R = %d, want 255", dst[0])
	}
	// G and B drop to about (1 - 128/255) of full.
	for _, c := range []int{1, 2} {
		if dst[c] < 125 || dst[c] > 129 {
			t.Errorf("channel %d = %d, want about 127", c, dst[c])
		}
	}
	if dst[3] != 255 {
		t.Errorf("alpha = %d, want 255", dst[3])
	}
}

func TestSourceOverBothTranslucent(t *testing.T) {
	// Half-alpha over half-alpha: out alpha = 0.5 + 0.5*0.5 = 0.75.
	dst := pixel(0, 0, 255, 128)
	src := pixel(255, 0, 0, 128)

	SourceOver(dst, src, 1)

	if dst[3] < 190 || dst[3] > 193 {
		t.Errorf("alpha = %d, want about 191", dst[3])
	}
	// Red dominates: sc*sa/outA = 0.502/0.753.
	if dst[0] < 167 || dst[0] > 173 {
		t.Errorf("R = %d, want about 170", dst[0])
	}
}

func TestSourceOverClampsOpacity(t *testing.T) {
	dst := pixel(255, 255, 255, 255)
	src := pixel(0, 0, 0, 255)

	SourceOver(dst, src, 1.5)

	if dst[0] != 0 || dst[3] != 255 {
		t.Errorf("dst = %v, want opaque black with clamped opacity", dst)
	}
}

func TestSourceOverLengthMismatch(t *testing.T) {
	dst := []uint8{255, 255, 255, 255, 255, 255, 255, 255}
	src := pixel(0, 0, 0, 255)

	// Only the first pixel has source data; the second stays untouched.
	SourceOver(dst, src, 1)

	if dst[0] != 0 {
		t.Errorf("first pixel R = %d, want 0", dst[0])
	}
	if dst[4] != 255 {
		t.Errorf("second pixel R = %d, want 255", dst[4])
	}
}
