package main

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"bitmapgen/mono"
)

// labelHeight is the strip at the top of the panel used for the asset name.
const labelHeight = 13

// AssetScreen shows one generated bitmap with its identifier.
type AssetScreen struct {
	Name   string
	Bitmap *mono.Bitmap
	Pos    int // 1-based position in the preview list
	Total  int
}

func (s *AssetScreen) Draw(fb *image.Gray) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  fb,
		Src:  image.Black,
		Face: face,
	}
	d.Dot = fixed.P(0, 11)
	d.DrawString(fmt.Sprintf("%d/%d %s", s.Pos, s.Total, s.Name))

	area := image.Rect(0, labelHeight, fb.Bounds().Dx(), fb.Bounds().Dy())
	dst := fitRect(s.Bitmap.Bounds(), area)
	if dst.Size() == s.Bitmap.Bounds().Size() {
		draw.Draw(fb, dst, s.Bitmap, s.Bitmap.Bounds().Min, draw.Src)
		return
	}
	draw.ApproxBiLinear.Scale(fb, dst, s.Bitmap, s.Bitmap.Bounds(), draw.Src, nil)
}

// fitRect returns src scaled down (never up) to fit area, keeping its aspect
// ratio, centered in area.
func fitRect(src, area image.Rectangle) image.Rectangle {
	w, h := src.Dx(), src.Dy()
	if w > area.Dx() || h > area.Dy() {
		if w*area.Dy() > h*area.Dx() {
			w, h = area.Dx(), max(1, h*area.Dx()/w)
		} else {
			w, h = max(1, w*area.Dy()/h), area.Dy()
		}
	}
	x := area.Min.X + (area.Dx()-w)/2
	y := area.Min.Y + (area.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
