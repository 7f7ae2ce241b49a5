// Package input turns the raw terminal byte stream into key presses and mouse clicks.
package input

import (
	"bufio"
	"strconv"
)

// Terminal mode sequences for click reporting in SGR format.
const (
	EnableMouse  = "\x1b[?1000h\x1b[?1006h"
	DisableMouse = "\x1b[?1006l\x1b[?1000l"
)

// sgrMaxLen bounds an SGR mouse report or any other CSI sequence; longer runs
// are treated as garbage.
const sgrMaxLen = 32

// MouseButton identifies the button of a click.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// Click is a mouse button press at a 0-indexed terminal cell.
type Click struct {
	Col, Row int
	Button   MouseButton
}

// Input represents the current frame's input state. Keys are edge triggered:
// a flag is set only for the frame in which its byte arrived.
type Input struct {
	Quit    bool
	Pause   bool
	Space   bool
	Enter   bool
	Escape  bool
	Clicks  []Click
	Pressed []byte
}

// Any reports whether any key or click arrived this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0 || len(in.Clicks) > 0
}

// Stream delivers input bytes via a channel and keeps a partial mouse report
// until the rest of it arrives.
type Stream struct {
	ch      chan byte
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// drain returns all bytes available right now. closed is true once the reader
// has hit EOF or an error.
func (s *Stream) drain() (buf []byte, closed bool) {
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf, true
			}
			buf = append(buf, b)
		default:
			return buf, false
		}
	}
}

// ReadInput drains all available bytes from the stream (non-blocking) and parses them.
// A closed stream reads as Quit.
func ReadInput(s *Stream) Input {
	buf, closed := s.drain()
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	in, rest := Parse(buf)
	s.pending = rest
	if closed {
		in.Quit = true
	}
	return in
}

// ResetKeyInput drops everything buffered so far, so a key pressed on one
// screen does not leak into the next.
func ResetKeyInput(s *Stream) {
	s.drain()
	s.pending = nil
}

// Parse decodes buf. Bytes of an unfinished escape sequence at the end of buf
// are returned as rest and should be prepended to the next read.
//
// Only a lone ESC at the end of buf reads as the Escape key. CSI (ESC [) and
// SS3 (ESC O) sequences are consumed whole, and ESC followed by any other byte
// is an Alt chord; none of them set key flags.
func Parse(buf []byte) (in Input, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b != '\x1b' || i+1 >= len(buf) {
			in.Pressed = append(in.Pressed, b)
			applyByte(&in, b)
			continue
		}

		switch buf[i+1] {
		case '[':
			if i+2 >= len(buf) {
				return in, buf[i:]
			}
			if buf[i+2] == '<' {
				n, click, ok, complete := parseSGRMouse(buf[i:])
				if !complete {
					return in, buf[i:]
				}
				if n > 0 {
					if ok {
						in.Clicks = append(in.Clicks, click)
					}
					i += n - 1
					continue
				}
			}
			n, complete := csiLength(buf[i:])
			if !complete {
				return in, buf[i:]
			}
			i += n - 1
		case 'O':
			if i+2 >= len(buf) {
				return in, buf[i:]
			}
			i += 2
		default:
			i++
		}
	}
	return in, nil
}

// csiLength returns the length of the CSI sequence at the start of data:
// ESC [, parameter bytes 0x30-0x3F, intermediate bytes 0x20-0x2F and a final
// byte 0x40-0x7E. A sequence broken by any other byte ends just before it.
// complete is false while the final byte has not arrived yet.
func csiLength(data []byte) (n int, complete bool) {
	for i := 2; i < len(data); i++ {
		if i >= sgrMaxLen {
			return i, true
		}
		switch c := data[i]; {
		case c >= 0x40 && c <= 0x7e:
			return i + 1, true
		case c >= 0x20 && c <= 0x3f:
		default:
			return i, true
		}
	}
	if len(data) >= sgrMaxLen {
		return len(data), true
	}
	return 0, false
}

// applyByte sets the key flag for a single pressed byte.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'p', 'P':
		in.Pause = true
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	case '\x1b':
		in.Escape = true
	}
}

// parseSGRMouse decodes ESC [ < Btn ; X ; Y M/m at the start of data.
// It returns the consumed length, the click and whether it is a button press
// worth reporting. complete is false while the terminator has not arrived yet;
// n is 0 for malformed input, which is then handled byte by byte.
func parseSGRMouse(data []byte) (n int, click Click, ok, complete bool) {
	end := 3
	for end < len(data) && end < sgrMaxLen {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= sgrMaxLen {
		return 0, Click{}, false, true
	}
	if end >= len(data) {
		return 0, Click{}, false, false
	}

	btn, x, y, valid := parseSGRParams(data[3:end])
	if !valid {
		return 0, Click{}, false, true
	}

	// Bits 0-1: button, bit 5: motion, bit 6: scroll. 'm' is a release.
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0
	press := data[end] == 'M' && !isMotion && !isScroll && buttonID != 3

	click = Click{Col: x - 1, Row: y - 1, Button: MouseButton(buttonID)}
	return end + 1, click, press, true
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y".
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	var fields [3]int
	field := 0
	start := 0
	for i := 0; i <= len(data); i++ {
		if i < len(data) && data[i] != ';' {
			continue
		}
		if field > 2 {
			return 0, 0, 0, false
		}
		v, err := strconv.Atoi(string(data[start:i]))
		if err != nil || v < 0 || v > 9999 {
			return 0, 0, 0, false
		}
		fields[field] = v
		field++
		start = i + 1
	}
	if field != 3 {
		return 0, 0, 0, false
	}
	return fields[0], fields[1], fields[2], true
}
