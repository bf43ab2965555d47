package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"bitmapgen/mono"
)

// Panel geometry of the serial LCD.
const (
	panelWidth  = 128
	panelHeight = 64

	panelBlock   = 64
	panelCmdWait = 5 * time.Millisecond
)

// Panel commands.
var (
	cmdReset    = []byte{0x1b, 0x40}
	cmdHome     = []byte{0x0b}
	cmdClear    = []byte{0x0c}
	cmdGraphics = []byte{0x1b, 0x47}
)

type Drawable interface {
	Draw(fb *image.Gray)
}

type Display struct {
	Width, Height int
	Framebuffer   *image.Gray
}

func NewDisplay(width, height int) *Display {
	return &Display{
		Width:       width,
		Height:      height,
		Framebuffer: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

func (d *Display) Clear() {
	imageBounds := d.Framebuffer.Bounds()
	for y := imageBounds.Min.Y; y < imageBounds.Max.Y; y++ {
		for x := imageBounds.Min.X; x < imageBounds.Max.X; x++ {
			d.Framebuffer.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

func (d *Display) DrawDrawable(dr Drawable) {
	dr.Draw(d.Framebuffer)
}

// Pack returns the framebuffer as row-major MSB-first bits, dark pixels set.
func (d *Display) Pack() []byte {
	return mono.Pack(mono.Threshold(d.Framebuffer, mono.DefaultLevel))
}

// Pages transposes the packed rows of Pack into the panel's page layout:
// byte page*Width+x holds column x of rows page*8..page*8+7, top row in bit 0.
func (d *Display) Pages() []byte {
	packed := d.Pack()
	stride := mono.BytesPerRow(d.Width)
	pages := make([]byte, d.Width*((d.Height+7)/8))
	for y := 0; y < d.Height; y++ {
		row := packed[y*stride : (y+1)*stride]
		for x := 0; x < d.Width; x++ {
			if row[x/8]&(0x80>>uint(x%8)) != 0 {
				pages[(y/8)*d.Width+x] |= 1 << uint(y%8)
			}
		}
	}
	return pages
}

// Panel speaks the serial LCD protocol over w.
type Panel struct {
	w     io.Writer
	sleep func(time.Duration)
}

func NewPanel(w io.Writer) *Panel {
	return &Panel{w: w, sleep: time.Sleep}
}

func (p *Panel) write(data []byte) error {
	n, err := p.w.Write(data)
	if err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	if n < len(data) {
		return fmt.Errorf("serial write: wrote only %d of %d bytes", n, len(data))
	}
	return nil
}

// Init resets the panel and clears it.
func (p *Panel) Init() error {
	for _, cmd := range [][]byte{cmdReset, cmdHome, cmdClear} {
		if err := p.write(cmd); err != nil {
			return err
		}
		p.sleep(panelCmdWait)
	}
	return nil
}

// Show uploads the display contents. The panel expects the 64-byte blocks
// of page data interleaved: even-indexed blocks first, then odd-indexed.
func (p *Panel) Show(d *Display) error {
	if d.Width != panelWidth || d.Height != panelHeight {
		return errors.New("panel: display must be 128x64")
	}
	if err := p.write(cmdGraphics); err != nil {
		return err
	}
	pages := d.Pages()
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(pages); i += panelBlock {
			if (i/panelBlock)%2 != pass {
				continue
			}
			if err := p.write(pages[i:min(i+panelBlock, len(pages))]); err != nil {
				return err
			}
		}
	}
	return nil
}
