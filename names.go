package main

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DigitAlphabet is the glyph set rendered by the digits job, in output order.
const DigitAlphabet = "0123456789:°"

// glyphIdents maps every rune of DigitAlphabet to its array identifier.
var glyphIdents = map[rune]string{
	'0': "DIGIT_0_BITMAP",
	'1': "DIGIT_1_BITMAP",
	'2': "DIGIT_2_BITMAP",
	'3': "DIGIT_3_BITMAP",
	'4': "DIGIT_4_BITMAP",
	'5': "DIGIT_5_BITMAP",
	'6': "DIGIT_6_BITMAP",
	'7': "DIGIT_7_BITMAP",
	'8': "DIGIT_8_BITMAP",
	'9': "DIGIT_9_BITMAP",
	':': "COLON_BITMAP",
	'°': "DEGREE_BITMAP",
}

// GlyphIdent returns the array identifier for r.
func GlyphIdent(r rune) (string, error) {
	id, ok := glyphIdents[r]
	if !ok {
		return "", fmt.Errorf("no identifier for glyph %q", r)
	}
	return id, nil
}

var cIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IconIdent derives the array identifier of an icon file, e.g.
// "icons8-partly-cloudy-day-32.png" -> "partly_cloudy_day_32x32".
func IconIdent(file string, size int) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	name := strings.ReplaceAll(stem, "-", "_")
	name = strings.ReplaceAll(name, "_"+strconv.Itoa(size), "")
	name = strings.ReplaceAll(name, "icons8_", "")
	id := fmt.Sprintf("%s_%dx%d", name, size, size)
	if !cIdent.MatchString(id) {
		return "", fmt.Errorf("icon %q: %q is not a valid C identifier", file, id)
	}
	return id, nil
}
