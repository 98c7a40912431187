package id3

import (
	"bytes"
	"io"
	"testing"
)

func TestUnsyncReaderCollapsesFFPad(t *testing.T) {
	in := []byte{0x01, 0xFF, 0x00, 0x02, 0xFF, 0x00, 0xFF, 0x00}
	r := newUnsyncReader(bytes.NewReader(in))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []byte{0x01, 0xFF, 0x02, 0xFF, 0xFF}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
	if got := r.BytesConsumed(); got != int64(len(in)) {
		t.Fatalf("BytesConsumed = %d, want %d", got, len(in))
	}
}

func TestUnsyncReaderPassesThroughNonFF(t *testing.T) {
	in := []byte{0x10, 0x20, 0x30}
	r := newUnsyncReader(bytes.NewReader(in))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("got %x, want %x", out, in)
	}
}

func TestUnsyncReaderTrailingFF(t *testing.T) {
	in := []byte{0x01, 0xFF}
	r := newUnsyncReader(bytes.NewReader(in))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("got %x, want %x", out, in)
	}
}

func TestEncodeUnsyncRoundTrips(t *testing.T) {
	cases := [][]byte{
		{0x00, 0x01, 0x02},
		{0xFF, 0xE0},
		{0xFF, 0x00},
		{0xFF},
		{0xFF, 0xFF, 0x00, 0x01},
		{0x41, 0xFF, 0x42, 0xFF, 0xE1, 0x43},
	}
	for _, raw := range cases {
		encoded := encodeUnsync(raw)
		r := newUnsyncReader(bytes.NewReader(encoded))
		out, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll(%x): %v", raw, err)
		}
		if !bytes.Equal(out, raw) {
			t.Fatalf("round trip of %x produced %x via encoded %x", raw, out, encoded)
		}
	}
}
