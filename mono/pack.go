package mono

import (
	"fmt"
	"image"
)

// BytesPerRow returns the number of bytes one packed row of the given width
// occupies.
func BytesPerRow(width int) int {
	if width <= 0 {
		return 0
	}
	return (width + 7) / 8
}

// PackedLen returns the length of the packed form of a w x h bitmap.
func PackedLen(w, h int) int {
	if h <= 0 {
		return 0
	}
	return BytesPerRow(w) * h
}

// Pack returns the packed form of b: row-major, MSB first, rows padded to
// whole bytes.
func Pack(b *Bitmap) []byte {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	stride := BytesPerRow(w)
	data := make([]byte, PackedLen(w, h))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if b.Pix[row*b.Stride+col] {
				data[row*stride+col/8] |= 1 << (7 - uint(col%8))
			}
		}
	}
	return data
}

// Unpack decodes data packed by Pack into a w x h bitmap anchored at the
// origin.
func Unpack(data []byte, w, h int) (*Bitmap, error) {
	if want := PackedLen(w, h); len(data) != want {
		return nil, fmt.Errorf("mono: %dx%d bitmap needs %d bytes, got %d", w, h, want, len(data))
	}
	b := NewBitmap(image.Rect(0, 0, w, h))
	stride := BytesPerRow(w)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if (data[row*stride+col/8]>>(7-uint(col%8)))&1 == 1 {
				b.Pix[row*b.Stride+col] = true
			}
		}
	}
	return b, nil
}
