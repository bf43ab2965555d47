package main

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name        string
		start       int32
		key         byte
		wantIndex   int32
		wantChanged bool
		wantQuit    bool
	}{
		{"right", 0, KEY_RIGHT, 1, true, false},
		{"down", 3, KEY_DOWN, 4, true, false},
		{"right wraps", 4, KEY_RIGHT, 0, true, false},
		{"left wraps", 0, KEY_LEFT, 4, true, false},
		{"up", 2, KEY_UP, 1, true, false},
		{"help goes home", 3, KEY_HELP, 0, true, false},
		{"enter at home", 0, KEY_ENTER, 0, false, false},
		{"esc quits", 2, KEY_ESC, 2, false, true},
		{"unknown key", 2, 0x30, 2, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kh := NewKeyHandler(5)
			atomic.StoreInt32(kh.Index, tt.start)
			changed, quit := kh.handleKey(tt.key)
			if changed != tt.wantChanged || quit != tt.wantQuit {
				t.Errorf("handleKey(0x%02X) = (%v, %v), want (%v, %v)", tt.key, changed, quit, tt.wantChanged, tt.wantQuit)
			}
			if got := atomic.LoadInt32(kh.Index); got != tt.wantIndex {
				t.Errorf("Index = %d, want %d", got, tt.wantIndex)
			}
		})
	}
}

func TestHandleKeyNoAssets(t *testing.T) {
	kh := NewKeyHandler(0)
	if changed, quit := kh.handleKey(KEY_RIGHT); changed || quit {
		t.Errorf("handleKey(RIGHT) = (%v, %v), want (false, false)", changed, quit)
	}
	if _, quit := kh.handleKey(KEY_ESC); !quit {
		t.Error("handleKey(ESC) quit = false, want true")
	}
}

// scriptedKeys replays keys, then reports timeouts forever.
type scriptedKeys struct {
	keys chan byte
}

func (s *scriptedKeys) SetReadTimeout(time.Duration) error { return nil }

func (s *scriptedKeys) Read(p []byte) (int, error) {
	select {
	case k := <-s.keys:
		p[0] = k
		return 1, nil
	case <-time.After(time.Millisecond):
		return 0, nil
	}
}

func TestKeyHandlerStart(t *testing.T) {
	src := &scriptedKeys{keys: make(chan byte, 2)}
	kh := NewKeyHandler(3)
	kh.Start(src)

	src.keys <- KEY_RIGHT
	select {
	case <-kh.RedrawChan:
	case <-time.After(time.Second):
		t.Fatal("no redraw after RIGHT")
	}
	if got := atomic.LoadInt32(kh.Index); got != 1 {
		t.Errorf("Index = %d, want 1", got)
	}

	src.keys <- KEY_ESC
	select {
	case <-kh.QuitChan:
	case <-time.After(time.Second):
		t.Fatal("no quit after ESC")
	}
}
