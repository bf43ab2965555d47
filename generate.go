package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/image/font"

	"bitmapgen/mono"
)

// DigitAssets renders every rune of DigitAlphabet with face.
func DigitAssets(face font.Face, w, h int) ([]Asset, error) {
	var assets []Asset
	for _, r := range DigitAlphabet {
		id, err := GlyphIdent(r)
		if err != nil {
			return nil, err
		}
		data := mono.Pack(RasterizeGlyph(face, r, w, h))
		log.Printf("  Generated '%c' bitmap (%d bytes)", r, len(data))
		assets = append(assets, Asset{Name: id, Data: data})
	}
	return assets, nil
}

// DigitsHeader lays out digit_bitmaps.h for the given assets, which hold
// one bitmap per DigitAlphabet rune in alphabet order. The dispatch cases
// and the default name the emitted arrays.
func DigitsHeader(assets []Asset, w, h int, source string) (*Header, error) {
	alphabet := []rune(DigitAlphabet)
	if len(assets) != len(alphabet) {
		return nil, fmt.Errorf("digits header needs %d bitmaps, got %d", len(alphabet), len(assets))
	}
	dispatch := &Dispatch{
		Comment:    "Lookup function to get bitmap for a digit",
		Signature:  "static inline const unsigned char* getDigitBitmap(char digit)",
		Key:        "digit",
		Default:    assets[0].Name,
		WarnSwitch: true,
	}
	for i, r := range alphabet {
		dispatch.Cases = append(dispatch.Cases, Case{Key: "'" + string(r) + "'", Ident: assets[i].Name})
	}

	return &Header{
		Guard:    "DIGIT_BITMAPS_H",
		Includes: []string{"<Arduino.h>"},
		Comments: []string{
			"Custom bitmap digits rendered from " + source,
			fmt.Sprintf("%dx%d pixels each (monochrome, 1 bit per pixel)", w, h),
			"Auto-generated - do not edit manually",
			"Run bitmapgen digits to regenerate",
		},
		Defines: []Define{
			{Name: "DIGIT_WIDTH", Value: strconv.Itoa(w)},
			{Name: "DIGIT_HEIGHT", Value: strconv.Itoa(h)},
			{
				Name:    "DIGIT_BYTES",
				Value:   "((DIGIT_WIDTH + 7) / 8 * DIGIT_HEIGHT)",
				Comment: fmt.Sprintf("%d bytes per digit", mono.PackedLen(w, h)),
			},
		},
		ArrayDecl: "static const unsigned char %s[DIGIT_BYTES] PROGMEM = {",
		Indent:    "    ",
		Assets:    assets,
		Dispatch:  dispatch,
	}, nil
}

// GenerateDigits renders the digit alphabet and returns the header text.
func GenerateDigits(cfg Config) ([]byte, error) {
	face, source, err := OpenFace(cfg.FontPaths, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	log.Printf("Generating bitmaps from font...")
	assets, err := DigitAssets(face, cfg.GlyphWidth, cfg.GlyphHeight)
	if err != nil {
		return nil, err
	}
	log.Printf("Header contains %d bitmaps, %d bytes each = %d bytes total",
		len(assets), mono.PackedLen(cfg.GlyphWidth, cfg.GlyphHeight),
		len(assets)*mono.PackedLen(cfg.GlyphWidth, cfg.GlyphHeight))

	hdr, err := DigitsHeader(assets, cfg.GlyphWidth, cfg.GlyphHeight, filepath.Base(source))
	if err != nil {
		return nil, err
	}
	return hdr.Bytes(), nil
}

// collectIcons returns the files in dir named *-<size>.png, sorted by name.
func collectIcons(dir string, size int) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("*-%d.png", size)))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// IconAssets converts every icon of the given size found in dir.
func IconAssets(dir string, size int) ([]Asset, error) {
	files, err := collectIcons(dir, size)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		log.Printf("Warning: no *-%d.png icons in %s", size, dir)
	}

	var assets []Asset
	for _, file := range files {
		id, err := IconIdent(file, size)
		if err != nil {
			return nil, err
		}
		bm, err := RasterizeIcon(file, size)
		if err != nil {
			return nil, err
		}
		assets = append(assets, Asset{Name: id, Data: mono.Pack(bm)})
	}
	return assets, nil
}

// IconsHeader lays out weather_bitmaps.h for the given assets.
func IconsHeader(assets []Asset, size int) *Header {
	return &Header{
		Guard: "WEATHER_BITMAPS_H",
		Comments: []string{
			fmt.Sprintf("Auto-generated from PNG files - %dx%d monochrome bitmaps", size, size),
			fmt.Sprintf("Each bitmap is %d bytes", mono.PackedLen(size, size)),
		},
		ArrayDecl: "const unsigned char %s[] PROGMEM = {",
		Indent:    "  ",
		Assets:    assets,
	}
}

// GenerateIcons converts the icons of one size and returns the header text.
func GenerateIcons(cfg Config, size int) ([]byte, error) {
	assets, err := IconAssets(cfg.IconDir, size)
	if err != nil {
		return nil, err
	}
	return IconsHeader(assets, size).Bytes(), nil
}
