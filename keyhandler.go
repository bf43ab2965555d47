package main

import (
	"log"
	"sync/atomic"
	"time"
)

const (
	KEY_HELP  = 0x41
	KEY_LEFT  = 0x42
	KEY_ESC   = 0x43
	KEY_UP    = 0x44
	KEY_ENTER = 0x45
	KEY_DOWN  = 0x46
	KEY_RIGHT = 0x47
)

// keySource is the read side of the panel's serial port.
type keySource interface {
	Read(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
}

// KeyHandler pages through Count assets with the panel keypad.
type KeyHandler struct {
	Index      *int32
	Count      int
	RedrawChan chan struct{}
	QuitChan   chan struct{}
}

func NewKeyHandler(count int) *KeyHandler {
	return &KeyHandler{
		Index:      new(int32),
		Count:      count,
		RedrawChan: make(chan struct{}, 1),
		QuitChan:   make(chan struct{}),
	}
}

func (kh *KeyHandler) Start(port keySource) {
	go func() {
		buf := make([]byte, 1)
		for {
			port.SetReadTimeout(100 * time.Millisecond)
			n, err := port.Read(buf)
			if err != nil {
				log.Printf("Key read error: %v", err)
				close(kh.QuitChan)
				return
			}
			if n != 1 {
				continue
			}
			log.Printf("Key pressed: 0x%02X", buf[0])
			changed, quit := kh.handleKey(buf[0])
			if quit {
				close(kh.QuitChan)
				return
			}
			if changed {
				select {
				case kh.RedrawChan <- struct{}{}:
				default:
				}
			}
		}
	}()
}

// handleKey applies key to the current index. ESC quits; HELP and ENTER jump
// back to the first asset.
func (kh *KeyHandler) handleKey(key byte) (changed, quit bool) {
	if kh.Count == 0 {
		return false, key == KEY_ESC
	}
	cur := int(atomic.LoadInt32(kh.Index))
	next := cur
	switch key {
	case KEY_ESC:
		return false, true
	case KEY_LEFT, KEY_UP:
		next = (cur - 1 + kh.Count) % kh.Count
	case KEY_RIGHT, KEY_DOWN:
		next = (cur + 1) % kh.Count
	case KEY_HELP, KEY_ENTER:
		next = 0
	}
	if next == cur {
		return false, false
	}
	atomic.StoreInt32(kh.Index, int32(next))
	return true, false
}
