package main

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"bitmapgen/mono"
)

// InkCoverage is the minimum glyph coverage (alpha) for a pixel to count as
// ink. Measuring and final rendering use the same rule.
const InkCoverage = 128

// canvasMargin pads the measuring canvas around the nominal glyph bounds.
const canvasMargin = 4

// RasterizeGlyph renders r into a w x h bitmap with its visible ink centered
// on the canvas, independent of the face's bearings.
func RasterizeGlyph(face font.Face, r rune, w, h int) *mono.Bitmap {
	left, top, inkW, inkH := measureInk(face, r)

	x := floorDiv(w-inkW, 2) - left
	y := floorDiv(h-inkH, 2) - top

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	drawGlyph(dst, face, r, image.Pt(x, y))
	return coverage(dst)
}

// measureInk draws r with its dot at the origin of an oversized canvas and
// returns the tight ink box relative to the dot.
func measureInk(face font.Face, r rune) (left, top, width, height int) {
	b, _ := font.BoundString(face, string(r))
	canvas := image.Rect(
		b.Min.X.Floor()-canvasMargin, b.Min.Y.Floor()-canvasMargin,
		b.Max.X.Ceil()+canvasMargin, b.Max.Y.Ceil()+canvasMargin,
	)
	dst := image.NewAlpha(canvas)
	drawGlyph(dst, face, r, image.Point{})

	ink := mono.InkBounds(coverage(dst))
	return ink.Min.X, ink.Min.Y, ink.Dx(), ink.Dy()
}

func drawGlyph(dst *image.Alpha, face font.Face, r rune, dot image.Point) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(string(r))
}

// coverage thresholds a glyph mask into a bitmap with the same bounds.
func coverage(a *image.Alpha) *mono.Bitmap {
	b := mono.NewBitmap(a.Rect)
	for y := a.Rect.Min.Y; y < a.Rect.Max.Y; y++ {
		for x := a.Rect.Min.X; x < a.Rect.Max.X; x++ {
			if a.AlphaAt(x, y).A >= InkCoverage {
				b.SetInk(x, y, true)
			}
		}
	}
	return b
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
