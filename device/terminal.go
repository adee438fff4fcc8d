// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package device

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// glyphs maps a pixel's brightness into one of 10 ASCII glyphs, darkest
// first, in bands of width 25.5 over [0,255].
var glyphs = []byte("@%#*+=-:. ")

// brightnessGlyph returns the glyph for an average channel brightness in
// [0,255].
func brightnessGlyph(brightness float64) byte {
	band := int(brightness / 25.5)
	if band < 0 {
		band = 0
	}
	if band >= len(glyphs) {
		band = len(glyphs) - 1
	}
	return glyphs[band]
}

// exitKey quits the terminal adapter's frame loop.
const exitKey = 'q'

// Terminal is an Adapter that renders frames as ANSI truecolor ASCII glyphs
// directly to stdout, and reads stdin byte-by-byte for arrow key holds and
// the exit key.
type Terminal struct {
	width, height int

	restore func()

	in   *input
	out  *bufio.Writer
	quit chan struct{}
}

// NewTerminal puts stdin into raw mode (no line buffering, no echo) and
// returns an Adapter sized to width, height.
func NewTerminal(width, height int) (*Terminal, error) {
	t := &Terminal{
		width:  width,
		height: height,
		in:     newInput(),
		out:    bufio.NewWriter(os.Stdout),
		quit:   make(chan struct{}),
	}
	if err := t.enableRawMode(); err != nil {
		return nil, err
	}
	go t.readStdin()
	return t, nil
}

// enableRawMode switches stdin to raw mode via termios, remembering the
// original settings so they can be restored on Close.
func (t *Terminal) enableRawMode() error {
	fd := int(os.Stdin.Fd())
	original, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("device: get termios: %w", err)
	}
	raw := *original
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG
	raw.Iflag &^= unix.IXON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("device: set termios: %w", err)
	}
	t.restore = func() { unix.IoctlSetTermios(fd, unix.TCSETS, original) }
	return nil
}

// readStdin feeds every byte read from stdin into the input decoder, and
// closes quit when the exit key arrives.
func (t *Terminal) readStdin() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		if buf[0] == exitKey {
			select {
			case <-t.quit:
			default:
				close(t.quit)
			}
			return
		}
		t.in.feed(buf[0])
	}
}

// Close restores the original terminal mode and stops the input decoder.
func (t *Terminal) Close() {
	t.in.stop()
	if t.restore != nil {
		t.restore()
	}
}

// ScreenSize implements Adapter.
func (t *Terminal) ScreenSize() (width, height int) { return t.width, t.height }

// RegisterTimer implements Adapter.
func (t *Terminal) RegisterTimer(intervalMS int, onTick func()) *Guard {
	ticker := time.NewTicker(time.Duration(intervalMS) * time.Millisecond)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				onTick()
			}
		}
	}()
	return newGuard(func() {
		ticker.Stop()
		close(done)
	})
}

// RegisterResize implements Adapter. The terminal adapter treats its size as
// fixed once constructed, so onResize fires once with the current size and
// never again.
func (t *Terminal) RegisterResize(onResize func(width, height int)) *Guard {
	onResize(t.width, t.height)
	return newGuard(func() {})
}

// RegisterKeyHold implements Adapter, polling the decoded input state at a
// fixed interval while held.
func (t *Terminal) RegisterKeyHold(key string, onHold func()) *Guard {
	ticker := time.NewTicker(20 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if t.in.isHeld(key) {
					onHold()
				}
			}
		}
	}()
	return newGuard(func() {
		ticker.Stop()
		close(done)
	})
}

// StartFrameLoop implements Adapter, calling onFrame at roughly 50Hz until
// the exit key arrives or the Guard is stopped.
func (t *Terminal) StartFrameLoop(onFrame func()) *Guard {
	ticker := time.NewTicker(20 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.quit:
				return
			case <-ticker.C:
				onFrame()
			}
		}
	}()
	return newGuard(func() {
		select {
		case <-done:
		default:
			close(done)
		}
	})
}

// Present implements Adapter, rendering width x height packed RGBA8 pixels
// as ANSI truecolor ASCII glyphs, one screen line per row.
func (t *Terminal) Present(width, height int, rgba []byte) {
	var b strings.Builder
	b.WriteString("\x1b[H") // cursor home, avoids a full clear+flicker each frame.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (x + y*width) * 4
			r, g, bl := rgba[i], rgba[i+1], rgba[i+2]
			brightness := (float64(r) + float64(g) + float64(bl)) / 3
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm%c", r, g, bl, brightnessGlyph(brightness))
		}
		b.WriteString("\x1b[0m\n")
	}
	t.out.WriteString(b.String())
	t.out.Flush()
}
