// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package device

import (
	"testing"
	"time"
)

func feedSequence(i *input, bytes ...byte) {
	for _, b := range bytes {
		i.feed(b)
	}
}

func TestInputDecodesArrowKeys(t *testing.T) {
	i := newInput()
	defer i.stop()

	feedSequence(i, 0x1b, '[', 'A')
	if !eventuallyHeld(i, "ArrowUp") {
		t.Fatalf("expected ArrowUp to be held after its escape sequence")
	}
}

func TestInputIgnoresUnknownEscapeSequence(t *testing.T) {
	i := newInput()
	defer i.stop()

	feedSequence(i, 0x1b, '[', 'Z')
	if i.isHeld("ArrowUp") {
		t.Errorf("expected an unrecognized sequence to hold nothing")
	}
}

func TestInputIgnoresPlainBytes(t *testing.T) {
	i := newInput()
	defer i.stop()

	feedSequence(i, 'a', 'b', 'c')
	if i.isHeld("ArrowUp") || i.isHeld("ArrowDown") {
		t.Errorf("expected plain bytes to never mark a key held")
	}
}

// eventuallyHeld polls isHeld for up to a second since feed is asynchronous
// with respect to decode.
func eventuallyHeld(i *input, name string) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if i.isHeld(name) {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}
