package id3

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names one of the four text-encoding bytes a text frame's payload
// may open with. Values 2 and 3 are only legal in ID3v2.4 tags; the frame
// decoder rejects them for earlier versions with a MalformedFrameError that
// carries the UnsupportedEncodingError message.
type Encoding byte

const (
	EncodingISO88591  Encoding = 0
	EncodingUTF16BOM  Encoding = 1
	EncodingUTF16BE   Encoding = 2
	EncodingUTF8      Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case EncodingISO88591:
		return "ISO-8859-1"
	case EncodingUTF16BOM:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return "unknown"
	}
}

// terminatorWidth is the width in bytes of this encoding's null terminator:
// 1 for the byte-oriented encodings, 2 for the UTF-16 variants (which must
// terminate on a 2-byte-aligned NUL NUL).
func (e Encoding) terminatorWidth() int {
	switch e {
	case EncodingUTF16BOM, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}

// newDecoder returns a fresh x/text decoder for e. A new instance is
// allocated on every call rather than sharing a package-level decoder
// because encoding.Decoder is stateful (it tracks BOM / surrogate state
// across Transform calls) and frame decoding can run concurrently across
// goroutines reading different tags.
func (e Encoding) newDecoder() (*encoding.Decoder, error) {
	switch e {
	case EncodingISO88591:
		return charmap.ISO8859_1.NewDecoder(), nil
	case EncodingUTF16BOM:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), nil
	case EncodingUTF8:
		return unicode.UTF8.NewDecoder(), nil
	default:
		return nil, UnsupportedEncodingError{Byte: byte(e)}
	}
}

// decodeText transcodes raw (already stripped of its terminator) bytes in
// encoding e to a Go string.
func decodeText(e Encoding, raw []byte) (string, error) {
	dec, err := e.newDecoder()
	if err != nil {
		return "", err
	}
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", MalformedFrameError{Reason: "text decode: " + err.Error()}
	}
	return string(out), nil
}

// splitNullTerminated splits raw at the first terminator matching e's
// terminator width and returns (field, remainder-after-terminator). ok is
// false if no terminator was found, in which case field is the whole of raw.
func splitNullTerminated(e Encoding, raw []byte) (field, rest []byte, ok bool) {
	width := e.terminatorWidth()
	if width == 1 {
		i := bytes.IndexByte(raw, 0x00)
		if i < 0 {
			return raw, nil, false
		}
		return raw[:i], raw[i+1:], true
	}
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == 0x00 && raw[i+1] == 0x00 {
			return raw[:i], raw[i+2:], true
		}
	}
	return raw, nil, false
}

// splitNullTerminatedN splits raw into up to n null-terminated fields,
// encoding e, used by frames like COMM/USLT whose last field runs to the end
// of the frame body without its own terminator. It mirrors the teacher's
// splitNullN but is encoding-aware about terminator width.
func splitNullTerminatedN(e Encoding, raw []byte, n int) [][]byte {
	fields := make([][]byte, 0, n)
	remaining := raw
	for len(fields) < n-1 {
		field, rest, ok := splitNullTerminated(e, remaining)
		if !ok {
			break
		}
		fields = append(fields, field)
		remaining = rest
	}
	fields = append(fields, remaining)
	return fields
}
