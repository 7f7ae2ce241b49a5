package input

import (
	"bufio"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"quit", "q", Input{Quit: true, Pressed: []byte("q")}},
		{"ctrl-c", "\x03", Input{Quit: true, Pressed: []byte("\x03")}},
		{"pause", "P", Input{Pause: true, Pressed: []byte("P")}},
		{"space and enter", " \r", Input{Space: true, Enter: true, Pressed: []byte(" \r")}},
		{"lone escape", "\x1b", Input{Escape: true, Pressed: []byte("\x1b")}},
		{"arrow ignored", "\x1b[Ap", Input{Pause: true, Pressed: []byte("p")}},
		{"home", "\x1b[H", Input{}},
		{"page up", "\x1b[5~", Input{}},
		{"ctrl arrow", "\x1b[1;5C", Input{}},
		{"f1", "\x1bOP", Input{}},
		{"f5 then space", "\x1b[15~ ", Input{Space: true, Pressed: []byte(" ")}},
		{"alt chord", "\x1bq", Input{}},
		{"sequence then escape", "\x1b[F\x1b", Input{Escape: true, Pressed: []byte("\x1b")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := Parse([]byte(tt.in))
			if len(rest) != 0 {
				t.Fatalf("rest = %q, want empty", rest)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMouse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Click
	}{
		{"left press", "\x1b[<0;10;5M", []Click{{Col: 9, Row: 4, Button: ButtonLeft}}},
		{"right press", "\x1b[<2;1;1M", []Click{{Col: 0, Row: 0, Button: ButtonRight}}},
		{"release", "\x1b[<0;10;5m", nil},
		{"motion", "\x1b[<32;10;5M", nil},
		{"scroll", "\x1b[<64;10;5M", nil},
		{"two clicks", "\x1b[<0;1;2M\x1b[<0;3;4M", []Click{{Col: 0, Row: 1}, {Col: 2, Row: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := Parse([]byte(tt.in))
			if len(rest) != 0 {
				t.Fatalf("rest = %q, want empty", rest)
			}
			if !reflect.DeepEqual(got.Clicks, tt.want) {
				t.Fatalf("clicks = %+v, want %+v", got.Clicks, tt.want)
			}
			if len(got.Pressed) != 0 || got.Escape {
				t.Fatalf("mouse report leaked into keys: %+v", got)
			}
		})
	}
}

func TestParseSplitMouseReport(t *testing.T) {
	in, rest := Parse([]byte("p\x1b[<0;12"))
	if !in.Pause || len(in.Clicks) != 0 {
		t.Fatalf("first half = %+v", in)
	}
	if string(rest) != "\x1b[<0;12" {
		t.Fatalf("rest = %q", rest)
	}

	in, rest = Parse(append(rest, []byte(";7M")...))
	if len(rest) != 0 || !reflect.DeepEqual(in.Clicks, []Click{{Col: 11, Row: 6}}) {
		t.Fatalf("second half = %+v rest=%q", in, rest)
	}
}

func TestParseMalformedMouse(t *testing.T) {
	in, rest := Parse([]byte("\x1b[<0;x;1M"))
	if len(rest) != 0 || len(in.Clicks) != 0 {
		t.Fatalf("malformed report parsed: %+v rest=%q", in, rest)
	}
	if in.Escape || in.Quit || in.Pause {
		t.Fatalf("malformed report set key flags: %+v", in)
	}
}

func TestParseSplitSequences(t *testing.T) {
	tests := []struct {
		name, first, second string
	}{
		{"csi", "\x1b[1;", "5C"},
		{"ss3", "\x1bO", "P"},
		{"introducer only", "\x1b[", "H"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, rest := Parse([]byte(tt.first))
			if string(rest) != tt.first || in.Any() || in.Escape {
				t.Fatalf("first half = %+v rest=%q", in, rest)
			}
			in, rest = Parse(append(rest, tt.second...))
			if len(rest) != 0 || in.Any() || in.Escape || in.Pause {
				t.Fatalf("second half = %+v rest=%q", in, rest)
			}
		})
	}
}

func TestParseOverlongSequence(t *testing.T) {
	long := "\x1b[" + strings.Repeat("1", sgrMaxLen) + "q"
	in, rest := Parse([]byte(long))
	if len(rest) != 0 || in.Escape {
		t.Fatalf("overlong sequence = %+v rest=%q", in, rest)
	}
}

func TestParseSGRParams(t *testing.T) {
	tests := []struct {
		in     string
		btn    int
		x, y   int
		wantOK bool
	}{
		{"0;1;1", 0, 1, 1, true},
		{"35;120;40", 35, 120, 40, true},
		{"0;1", 0, 0, 0, false},
		{"0;1;1;1", 0, 0, 0, false},
		{"0;;1", 0, 0, 0, false},
		{"0;99999;1", 0, 0, 0, false},
	}
	for _, tt := range tests {
		btn, x, y, ok := parseSGRParams([]byte(tt.in))
		if ok != tt.wantOK || btn != tt.btn || x != tt.x || y != tt.y {
			t.Fatalf("parseSGRParams(%q) = %d,%d,%d,%v", tt.in, btn, x, y, ok)
		}
	}
}

func TestStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" \x1b[<0;4;2M")))

	var in Input
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		in = ReadInput(s)
		if in.Quit {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// All bytes and the EOF arrive before the reader goroutine exits, but may be
	// spread over several reads.
	if !in.Quit {
		t.Fatal("closed stream did not read as Quit")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := &Stream{ch: make(chan byte, 8), pending: []byte("\x1b[<0")}
	s.ch <- 'q'

	ResetKeyInput(s)
	if in := ReadInput(s); in.Any() || in.Quit {
		t.Fatalf("input after reset = %+v", in)
	}
}
