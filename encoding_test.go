package id3

import "testing"

func TestDecodeTextISO88591(t *testing.T) {
	got, err := decodeText(EncodingISO88591, []byte("Caf\xe9"))
	if err != nil {
		t.Fatalf("decodeText: %v", err)
	}
	if got != "Café" {
		t.Fatalf("got %q, want %q", got, "Café")
	}
}

func TestDecodeTextUTF8(t *testing.T) {
	got, err := decodeText(EncodingUTF8, []byte("Café"))
	if err != nil {
		t.Fatalf("decodeText: %v", err)
	}
	if got != "Café" {
		t.Fatalf("got %q, want %q", got, "Café")
	}
}

func TestDecodeTextUTF16BOMLittleEndian(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	got, err := decodeText(EncodingUTF16BOM, raw)
	if err != nil {
		t.Fatalf("decodeText: %v", err)
	}
	if got != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}

func TestSplitNullTerminatedSingleByte(t *testing.T) {
	field, rest, ok := splitNullTerminated(EncodingISO88591, []byte("abc\x00def"))
	if !ok || string(field) != "abc" || string(rest) != "def" {
		t.Fatalf("got field=%q rest=%q ok=%v", field, rest, ok)
	}
}

func TestSplitNullTerminatedUTF16(t *testing.T) {
	raw := []byte{'a', 0x00, 0x00, 0x00, 'b', 0x00}
	field, rest, ok := splitNullTerminated(EncodingUTF16BE, raw)
	if !ok {
		t.Fatalf("expected terminator found")
	}
	if len(field) != 2 || len(rest) != 2 {
		t.Fatalf("unexpected split: field=%x rest=%x", field, rest)
	}
}

func TestSplitNullTerminatedNoTerminator(t *testing.T) {
	_, _, ok := splitNullTerminated(EncodingISO88591, []byte("noterm"))
	if ok {
		t.Fatalf("expected no terminator found")
	}
}
