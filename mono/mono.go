package mono

import (
	"image"
	"image/color"
)

var (
	// Ink is the foreground color.
	Ink = color.Gray{Y: 0}
	// Paper is the background color.
	Paper = color.Gray{Y: 0xFF}
)

// DefaultLevel is the luminance threshold below which a pixel becomes ink.
const DefaultLevel = 128

func toMono(c color.Color) color.Color {
	if isInk(c, DefaultLevel) {
		return Ink
	}
	return Paper
}

func isInk(c color.Color, level uint8) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < level
}

// Model converts colors to Ink or Paper using DefaultLevel.
var Model = color.ModelFunc(toMono)

// Bitmap is a bilevel image. Each pixel is stored unpacked as a bool so that
// drawing into it stays cheap; Pack produces the firmware layout.
type Bitmap struct {
	Pix    []bool          // true = ink
	Stride int             // Pixels per row
	Rect   image.Rectangle // Image bounds
}

// NewBitmap returns an all-paper bitmap with the given bounds.
func NewBitmap(r image.Rectangle) *Bitmap {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Bitmap{Rect: r}
	}
	return &Bitmap{
		Pix:    make([]bool, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns Model.
func (b *Bitmap) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// At returns Ink or Paper for the pixel at (x, y).
func (b *Bitmap) At(x, y int) color.Color {
	if b.Ink(x, y) {
		return Ink
	}
	return Paper
}

// Set thresholds c with DefaultLevel and stores the result.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetInk(x, y, isInk(c, DefaultLevel))
}

// Ink reports whether the pixel at (x, y) is ink. Out of bounds pixels are
// paper.
func (b *Bitmap) Ink(x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return false
	}
	return b.Pix[b.pixOffset(x, y)]
}

// SetInk sets the pixel at (x, y). Out of bounds writes are ignored.
func (b *Bitmap) SetInk(x, y int, ink bool) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	b.Pix[b.pixOffset(x, y)] = ink
}

func (b *Bitmap) pixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x - b.Rect.Min.X)
}

// Equal reports whether both bitmaps have the same size and pixels. The
// origin of the bounds is ignored.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.Rect.Dx() != o.Rect.Dx() || b.Rect.Dy() != o.Rect.Dy() {
		return false
	}
	for y := 0; y < b.Rect.Dy(); y++ {
		for x := 0; x < b.Rect.Dx(); x++ {
			if b.Ink(b.Rect.Min.X+x, b.Rect.Min.Y+y) != o.Ink(o.Rect.Min.X+x, o.Rect.Min.Y+y) {
				return false
			}
		}
	}
	return true
}

// Threshold converts img to a bitmap: a pixel whose luminance is below level
// becomes ink. Luminance uses color.GrayModel (ITU-R 601 weights).
func Threshold(img image.Image, level uint8) *Bitmap {
	r := img.Bounds()
	b := NewBitmap(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if isInk(img.At(x, y), level) {
				b.Pix[b.pixOffset(x, y)] = true
			}
		}
	}
	return b
}

// InkBounds returns the smallest rectangle containing every ink pixel, or
// the empty rectangle when the bitmap has no ink.
func InkBounds(b *Bitmap) image.Rectangle {
	var box image.Rectangle
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if b.Pix[b.pixOffset(x, y)] {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}
