package terminal

import (
	"time"
)

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// byteSource delivers raw input bytes.
// Read returns (nil, nil) when nothing arrived within timeout; a zero timeout never blocks.
type byteSource interface {
	Read(timeout time.Duration) ([]byte, error)
}

// InputReader decodes raw bytes into one Key per poll.
// Bytes past the first complete event stay queued for the next poll.
type InputReader struct {
	src byteSource
	now func() time.Time
	buf []byte
}

// NewInputReader wraps a byte source
func NewInputReader(src byteSource) *InputReader {
	return &InputReader{
		src: src,
		now: time.Now,
		buf: make([]byte, 0, 64),
	}
}

// PollKey returns the next pending key, or KeyNone if no input is pending.
// An incomplete escape sequence is given up to escapeTimeout to complete.
func (r *InputReader) PollKey() (Key, error) {
	if len(r.buf) == 0 {
		data, err := r.src.Read(0)
		if err != nil {
			return KeyNone, err
		}
		r.buf = append(r.buf, data...)
	}
	if len(r.buf) == 0 {
		return KeyNone, nil
	}

	key, n := decodeKey(r.buf)
	if n == 0 {
		deadline := r.now().Add(escapeTimeout)
		for n == 0 {
			remaining := deadline.Sub(r.now())
			if remaining <= 0 {
				key, n = resolvePartial(r.buf)
				break
			}
			data, err := r.src.Read(remaining)
			if err != nil {
				return KeyNone, err
			}
			if len(data) == 0 {
				key, n = resolvePartial(r.buf)
				break
			}
			r.buf = append(r.buf, data...)
			key, n = decodeKey(r.buf)
		}
	}

	r.consume(n)
	return key, nil
}

// consume drops n bytes from the front of the queue
func (r *InputReader) consume(n int) {
	if n >= len(r.buf) {
		r.buf = r.buf[:0]
		return
	}
	copy(r.buf, r.buf[n:])
	r.buf = r.buf[:len(r.buf)-n]
}

// decodeKey parses the first event in data and returns bytes consumed, 0 on incomplete sequence
func decodeKey(data []byte) (Key, int) {
	if len(data) == 0 {
		return KeyNone, 0
	}

	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b == '\n' || b == '\r':
		return KeyEnter, 1
	case b == 0x03:
		return KeyInterrupt, 1
	case b >= 0x20 && b < 0x7f:
		return KeyFromRune(rune(b)), 1
	}
	return KeyUnknown, 1
}

// decodeEscape handles ESC, ESC [ X and ESC O X
func decodeEscape(data []byte) (Key, int) {
	// Need at least 2 bytes to determine sequence type
	if len(data) < 2 {
		return KeyNone, 0
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		if len(data) < 3 {
			return KeyNone, 0
		}
		if key, ok := arrowKey(data[2]); ok {
			return key, 3
		}
		return KeyEscape, 3
	}

	// Bare ESC followed by an unrelated byte, which stays queued
	return KeyEscape, 1
}

// decodeCSI parses ESC [ ... up to its final byte
func decodeCSI(data []byte) (Key, int) {
	if len(data) < 3 {
		return KeyNone, 0
	}
	if key, ok := arrowKey(data[2]); ok {
		return key, 3
	}

	// Swallow any other CSI sequence (parameters then a final byte in 0x40-0x7e)
	maxScan := min(len(data), 16)
	for end := 2; end < maxScan; end++ {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			return KeyEscape, end + 1
		}
		if b < 0x20 || b > 0x7e {
			return KeyEscape, end
		}
	}
	if len(data) >= 16 {
		return KeyEscape, len(data)
	}
	return KeyNone, 0
}

// resolvePartial settles an escape sequence that never completed
func resolvePartial(data []byte) (Key, int) {
	return KeyEscape, len(data)
}

func arrowKey(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return KeyNone, false
}
