package input

import (
	"scrollpage/internal/ui/input/types"
)

const (
	keyEsc       = 0x1b
	keyCtrlC     = 0x03
	maxCSILength = 16
)

// ByteReader is a blocking byte source that can report how many bytes were
// already delivered by the last read. *bufio.Reader satisfies it.
type ByteReader interface {
	ReadByte() (byte, error)
	Buffered() int
}

// Decoder turns raw terminal bytes into keys. Escape sequences are read only
// from bytes that arrived together with the ESC, so a decode never waits on
// more than one read.
type Decoder struct{}

// ReadKey blocks for one key and decodes it. Unknown input decodes to KeyNone.
func (d Decoder) ReadKey(r ByteReader) (types.Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return types.KeyNone, err
	}

	switch {
	case b == keyEsc:
		return d.readEscape(r), nil
	case b == '\r' || b == '\n':
		return types.KeyEnter, nil
	case b == 'q' || b == 'Q':
		return types.KeyQuit, nil
	case b == keyCtrlC:
		return types.KeyInterrupt, nil
	case b >= 0xc0:
		// Swallow the rest of a multi-byte rune so one keypress is one key
		d.skipContinuation(r, utf8Len(b)-1)
	}
	return types.KeyNone, nil
}

func (d Decoder) readEscape(r ByteReader) types.Key {
	if r.Buffered() == 0 {
		return types.KeyEscape
	}
	b, err := r.ReadByte()
	if err != nil {
		return types.KeyEscape
	}
	switch b {
	case '[':
		return d.readCSI(r)
	case 'O':
		return d.readSS3(r)
	default:
		return types.KeyEscape
	}
}

// readCSI consumes parameter and intermediate bytes up to the final byte
func (d Decoder) readCSI(r ByteReader) types.Key {
	var params []byte
	for i := 0; i < maxCSILength && r.Buffered() > 0; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return types.KeyNone
		}
		switch {
		case b >= 0x20 && b <= 0x3f:
			params = append(params, b)
		case b >= 0x40 && b <= 0x7e:
			return csiKey(b, params)
		default:
			return types.KeyNone
		}
	}
	return types.KeyNone
}

func (d Decoder) readSS3(r ByteReader) types.Key {
	if r.Buffered() == 0 {
		return types.KeyNone
	}
	b, err := r.ReadByte()
	if err != nil {
		return types.KeyNone
	}
	return letterKey(b)
}

func (d Decoder) skipContinuation(r ByteReader, n int) {
	for i := 0; i < n && r.Buffered() > 0; i++ {
		if _, err := r.ReadByte(); err != nil {
			return
		}
	}
}

func csiKey(final byte, params []byte) types.Key {
	if final != '~' {
		return letterKey(final)
	}
	switch firstParam(params) {
	case 1, 7:
		return types.KeyHome
	case 4, 8:
		return types.KeyEnd
	case 5:
		return types.KeyPageUp
	case 6:
		return types.KeyPageDown
	}
	return types.KeyNone
}

func letterKey(b byte) types.Key {
	switch b {
	case 'A':
		return types.KeyUp
	case 'B':
		return types.KeyDown
	case 'C':
		return types.KeyRight
	case 'D':
		return types.KeyLeft
	case 'H':
		return types.KeyHome
	case 'F':
		return types.KeyEnd
	}
	return types.KeyNone
}

// firstParam parses the leading decimal parameter of a CSI sequence, -1 if absent
func firstParam(params []byte) int {
	n, seen := 0, false
	for _, b := range params {
		if b < '0' || b > '9' {
			break
		}
		n = n*10 + int(b-'0')
		seen = true
	}
	if !seen {
		return -1
	}
	return n
}

func utf8Len(lead byte) int {
	switch {
	case lead >= 0xf0:
		return 4
	case lead >= 0xe0:
		return 3
	default:
		return 2
	}
}
