package main

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"bitmapgen/mono"
)

// previewScreens builds one screen per digit glyph and, if icons is set, per
// icon of every configured size.
func previewScreens(cfg Config, icons bool) ([]*AssetScreen, error) {
	face, _, err := OpenFace(cfg.FontPaths, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	digits, err := DigitAssets(face, cfg.GlyphWidth, cfg.GlyphHeight)
	if err != nil {
		return nil, err
	}
	var screens []*AssetScreen
	if err := appendScreens(&screens, digits, cfg.GlyphWidth, cfg.GlyphHeight); err != nil {
		return nil, err
	}

	if icons {
		for _, size := range cfg.IconSizes {
			assets, err := IconAssets(cfg.IconDir, size)
			if err != nil {
				return nil, err
			}
			if err := appendScreens(&screens, assets, size, size); err != nil {
				return nil, err
			}
		}
	}

	for i, s := range screens {
		s.Pos, s.Total = i+1, len(screens)
	}
	return screens, nil
}

// appendScreens decodes packed assets back into bitmaps, so the panel shows
// exactly the bytes that end up in the header.
func appendScreens(screens *[]*AssetScreen, assets []Asset, w, h int) error {
	for _, a := range assets {
		bm, err := mono.Unpack(a.Data, w, h)
		if err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
		*screens = append(*screens, &AssetScreen{Name: a.Name, Bitmap: bm})
	}
	return nil
}

// runPreview shows the generated bitmaps on the serial panel until ESC.
func runPreview(cfg Config, icons bool) error {
	screens, err := previewScreens(cfg, icons)
	if err != nil {
		return err
	}
	if len(screens) == 0 {
		return errors.New("nothing to preview")
	}

	port, err := OpenPort(cfg.SerialDevice, cfg.BaudRate)
	if err != nil {
		return fmt.Errorf("cannot open serial port %s: %w", cfg.SerialDevice, err)
	}
	defer port.Close()

	panel := NewPanel(port)
	if err := panel.Init(); err != nil {
		return err
	}

	display := NewDisplay(panelWidth, panelHeight)
	keyHandler := NewKeyHandler(len(screens))
	keyHandler.Start(port)

	for {
		cur := screens[int(atomic.LoadInt32(keyHandler.Index))%len(screens)]
		display.Clear()
		display.DrawDrawable(cur)
		if err := panel.Show(display); err != nil {
			return err
		}
		log.Printf("Showing %s (%d/%d)", cur.Name, cur.Pos, cur.Total)

		select {
		case <-keyHandler.RedrawChan:
		case <-keyHandler.QuitChan:
			return nil
		}
	}
}
