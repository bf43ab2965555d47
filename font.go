package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// fontDPI makes one point equal one pixel.
const fontDPI = 72

// collectionIndices is the order in which faces of a .ttc/.otc file are
// tried: Heavy, Bold, Regular.
var collectionIndices = []int{5, 1, 0}

// builtinFont names the fallback face in log lines.
const builtinFont = "built-in Go Mono Bold"

// ResolveFont returns the first path in paths that is an existing regular
// file, or "" if there is none.
func ResolveFont(paths []string) string {
	for _, p := range paths {
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// LoadFace parses the font at path and returns a face at size points.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f *opentype.Font
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		f, err = pickFromCollection(data)
	default:
		f, err = opentype.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", path, err)
	}
	return newFace(f, size)
}

func pickFromCollection(data []byte) (*opentype.Font, error) {
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	for _, i := range collectionIndices {
		if i >= c.NumFonts() {
			continue
		}
		f, err := c.Font(i)
		if err == nil {
			log.Printf("  Loaded font variant (index=%d)", i)
			return f, nil
		}
	}
	return nil, fmt.Errorf("no usable face among %d", c.NumFonts())
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingNone,
	})
}

// BuiltinFace returns the embedded fallback face at size points.
func BuiltinFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, err
	}
	return newFace(f, size)
}

// OpenFace resolves the first available font in paths and loads it. A
// missing or broken font is not an error: a warning is logged and the
// built-in face is used instead. The returned string names the source.
func OpenFace(paths []string, size float64) (font.Face, string, error) {
	if path := ResolveFont(paths); path != "" {
		log.Printf("Using font: %s", path)
		face, err := LoadFace(path, size)
		if err == nil {
			return face, path, nil
		}
		log.Printf("Warning: Could not load font %s: %v", path, err)
	} else {
		log.Printf("Warning: none of %d candidate fonts found, using %s", len(paths), builtinFont)
	}

	face, err := BuiltinFace(size)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", builtinFont, err)
	}
	return face, builtinFont, nil
}
