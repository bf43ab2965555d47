package mono

import (
	"bytes"
	"image"
	"math/rand"
	"testing"
)

func TestBytesPerRow(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{32, 4},
		{70, 9},
	}

	for _, tt := range tests {
		if got := BytesPerRow(tt.width); got != tt.want {
			t.Errorf("BytesPerRow(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestPackLength(t *testing.T) {
	for w := 1; w <= 20; w++ {
		for h := 1; h <= 12; h++ {
			data := Pack(NewBitmap(image.Rect(0, 0, w, h)))
			if want := (w + 7) / 8 * h; len(data) != want {
				t.Errorf("len(Pack(%dx%d)) = %d, want %d", w, h, len(data), want)
			}
		}
	}
	// 9 bytes per row of 70 pixels.
	if got := len(Pack(NewBitmap(image.Rect(0, 0, 70, 110)))); got != 990 {
		t.Errorf("len(Pack(70x110)) = %d, want 990", got)
	}
	if got := PackedLen(70, 110); got != 990 {
		t.Errorf("PackedLen(70, 110) = %d, want 990", got)
	}
}

func TestPackSinglePixel(t *testing.T) {
	b := NewBitmap(image.Rect(0, 0, 8, 8))
	b.SetInk(0, 0, true)

	want := []byte{0x80, 0, 0, 0, 0, 0, 0, 0}
	if got := Pack(b); !bytes.Equal(got, want) {
		t.Errorf("Pack() = % x, want % x", got, want)
	}
}

func TestPackBitAddressing(t *testing.T) {
	b := NewBitmap(image.Rect(0, 0, 10, 2))
	b.SetInk(0, 0, true)
	b.SetInk(9, 0, true)
	b.SetInk(7, 1, true)

	want := []byte{0x80, 0x40, 0x01, 0x00}
	if got := Pack(b); !bytes.Equal(got, want) {
		t.Errorf("Pack() = % x, want % x", got, want)
	}
}

func TestPackOffsetRect(t *testing.T) {
	b := NewBitmap(image.Rect(40, 40, 48, 41))
	b.SetInk(47, 40, true)
	if got := Pack(b); !bytes.Equal(got, []byte{0x01}) {
		t.Errorf("Pack() = % x, want 01", got)
	}
}

func TestPackUniform(t *testing.T) {
	tests := []struct {
		name string
		n    int
		ink  bool
		want byte
	}{
		{"all ink 8", 8, true, 0xFF},
		{"all ink 32", 32, true, 0xFF},
		{"empty 32", 32, false, 0x00},
		{"empty 70", 70, false, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBitmap(image.Rect(0, 0, tt.n, tt.n))
			for i := range b.Pix {
				b.Pix[i] = tt.ink
			}
			for i, v := range Pack(b) {
				if v != tt.want {
					t.Fatalf("Pack()[%d] = 0x%02x, want 0x%02x", i, v, tt.want)
				}
			}
		})
	}
}

func TestPackAllInkPadding(t *testing.T) {
	// Padding bits past the row width stay clear.
	b := NewBitmap(image.Rect(0, 0, 10, 1))
	for i := range b.Pix {
		b.Pix[i] = true
	}
	if got := Pack(b); !bytes.Equal(got, []byte{0xFF, 0xC0}) {
		t.Errorf("Pack() = % x, want ff c0", got)
	}
}

func TestPackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []image.Point{{1, 1}, {7, 3}, {8, 8}, {13, 5}, {32, 32}, {70, 110}}

	for _, sz := range sizes {
		b := NewBitmap(image.Rect(0, 0, sz.X, sz.Y))
		for i := range b.Pix {
			b.Pix[i] = rng.Intn(2) == 1
		}
		got, err := Unpack(Pack(b), sz.X, sz.Y)
		if err != nil {
			t.Fatalf("Unpack(%v) error: %v", sz, err)
		}
		if !got.Equal(b) {
			t.Errorf("Unpack(Pack(b)) != b for %dx%d", sz.X, sz.Y)
		}
	}
}

func TestUnpackLengthMismatch(t *testing.T) {
	if _, err := Unpack(make([]byte, 127), 32, 32); err == nil {
		t.Error("Unpack(127 bytes, 32, 32) error = nil, want error")
	}
}
