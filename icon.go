package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"

	"bitmapgen/mono"
)

// RasterizeIcon decodes the image at path, flattens it onto white, resizes
// it to size x size and thresholds it at mono.DefaultLevel.
func RasterizeIcon(path string, size int) (*mono.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", path, err)
	}
	return IconBitmap(src, size), nil
}

// IconBitmap converts a decoded image to a size x size bitmap.
func IconBitmap(src image.Image, size int) *mono.Bitmap {
	img := flatten(src)
	if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
		g := gift.New(gift.Resize(size, size, gift.LanczosResampling))
		resized := image.NewRGBA(g.Bounds(img.Bounds()))
		g.Draw(resized, img)
		img = resized
	}
	return mono.Threshold(img, mono.DefaultLevel)
}

// flatten composites src over an opaque white canvas, so transparent pixels
// end up as paper. The result is anchored at the origin.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
