// Package mono provides a bilevel (1 bit per pixel) image type and the
// packing used by monochrome e-ink firmware bitmaps.
//
// A pixel is either ink (black, foreground) or paper (white, background).
// Packed data is row-major, most significant bit first, with every row
// padded to a whole number of bytes.
//
// Memory layout example for a 10x2 bitmap (2 bytes per row):
//
//	Row 0 ink at x=0, x=9:  0x80 0x40
//	Row 1 ink at x=7:       0x01 0x00
//
// Bit (x, y) lives in byte y*BytesPerRow(w) + x/8 at bit position 7 - x%8.
//
// Example usage:
//
//	// Threshold a decoded image and pack it
//	bm := mono.Threshold(img, 128)
//	data := mono.Pack(bm)
//
//	// Decode packed data again
//	bm, err := mono.Unpack(data, 32, 32)
package mono
