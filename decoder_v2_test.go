package id3

import (
	"bytes"
	"testing"
)

func appendFrameV24(buf []byte, id string, flags uint16, body []byte) []byte {
	buf = append(buf, []byte(id)...)
	sizeBytes := encodeSyncSafe4(len(body))
	buf = append(buf, sizeBytes[:]...)
	buf = append(buf, byte(flags>>8), byte(flags))
	buf = append(buf, body...)
	return buf
}

func buildV24Tag(frames []byte, unsync bool) []byte {
	var flagsByte byte
	if unsync {
		flagsByte = 0x80
	}
	sizeBytes := encodeSyncSafe4(len(frames))
	header := []byte{'I', 'D', '3', 4, 0, flagsByte, sizeBytes[0], sizeBytes[1], sizeBytes[2], sizeBytes[3]}
	return append(header, frames...)
}

func TestDecodeV24TextAndComment(t *testing.T) {
	var frames []byte
	frames = appendFrameV24(frames, "TIT2", 0, append([]byte{byte(EncodingUTF8)}, []byte("Song Title")...))
	frames = appendFrameV24(frames, "TPE1", 0, append([]byte{byte(EncodingUTF8)}, []byte("Artist Name")...))

	commentBody := append([]byte{byte(EncodingUTF8)}, []byte("eng")...)
	commentBody = append(commentBody, 0x00) // empty description terminator
	commentBody = append(commentBody, []byte("nice track")...)
	frames = appendFrameV24(frames, "COMM", 0, commentBody)

	data := buildV24Tag(frames, false)
	tag, err := ParseOne(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if tag.Title() != "Song Title" {
		t.Fatalf("Title() = %q", tag.Title())
	}
	if tag.Artist() != "Artist Name" {
		t.Fatalf("Artist() = %q", tag.Artist())
	}
	if tag.Comment() != "nice track" {
		t.Fatalf("Comment() = %q", tag.Comment())
	}
}

func TestDecodeV24WithUnsynchronisation(t *testing.T) {
	raw := append([]byte{byte(EncodingUTF8)}, []byte("A\xffB")...) // embeds a literal 0xFF
	encodedBody := encodeUnsync(raw)

	var frames []byte
	frames = appendFrameV24(frames, "TIT2", 0, encodedBody)

	data := buildV24Tag(frames, true)
	tag, err := ParseOne(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if got := tag.Title(); got != "A\xffB" {
		t.Fatalf("Title() = %q, want %q", got, "A\xffB")
	}
}

func TestDecodeV24WithFrameLevelUnsynchronisation(t *testing.T) {
	raw := append([]byte{byte(EncodingUTF8)}, []byte("A\xffB")...) // embeds a literal 0xFF
	encodedBody := encodeUnsync(raw)

	var frames []byte
	// Frame-level unsync bit (0x0002) set, but the tag itself is not
	// unsynchronised: the frame reader must collapse this body itself.
	frames = appendFrameV24(frames, "TIT2", 0x0002, encodedBody)

	data := buildV24Tag(frames, false)
	tag, err := ParseOne(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if got := tag.Title(); got != "A\xffB" {
		t.Fatalf("Title() = %q, want %q", got, "A\xffB")
	}
}

func TestDecodeV24DropsMalformedFrameButKeepsOthers(t *testing.T) {
	var frames []byte
	// TXXX with no terminator at all: malformed, should be dropped.
	frames = appendFrameV24(frames, "TXXX", 0, []byte{byte(EncodingUTF8), 'n', 'o', 't', 'e', 'r', 'm'})
	frames = appendFrameV24(frames, "TALB", 0, append([]byte{byte(EncodingUTF8)}, []byte("An Album")...))

	data := buildV24Tag(frames, false)
	tag, err := ParseOne(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if tag.HasFrame("TXXX") {
		t.Fatalf("expected malformed TXXX to be dropped")
	}
	if tag.Album() != "An Album" {
		t.Fatalf("Album() = %q", tag.Album())
	}
}

func TestDecodeV24DropsFrameWithBadEncodingByteButKeepsOthers(t *testing.T) {
	var frames []byte
	// Encoding byte 4 is out of range (only 0-3 are defined): malformed,
	// should be dropped rather than aborting the whole tag.
	frames = appendFrameV24(frames, "TIT2", 0, append([]byte{4}, []byte("bad")...))
	frames = appendFrameV24(frames, "TALB", 0, append([]byte{byte(EncodingUTF8)}, []byte("An Album")...))

	data := buildV24Tag(frames, false)
	tag, err := ParseOne(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if tag.HasFrame("TIT2") {
		t.Fatalf("expected frame with bad encoding byte to be dropped")
	}
	if tag.Album() != "An Album" {
		t.Fatalf("Album() = %q", tag.Album())
	}
}

func TestDecodeV24MultiValueText(t *testing.T) {
	body := []byte{byte(EncodingUTF8)}
	body = append(body, []byte("Composer One")...)
	body = append(body, 0x00)
	body = append(body, []byte("Composer Two")...)

	var frames []byte
	frames = appendFrameV24(frames, "TCOM", 0, body)
	data := buildV24Tag(frames, false)

	tag, err := ParseOne(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	f := tag.FramesByID("TCOM")
	if len(f) != 1 {
		t.Fatalf("expected 1 TCOM frame, got %d", len(f))
	}
	tif, ok := f[0].(TextInformationFrame)
	if !ok || len(tif.Text) != 2 {
		t.Fatalf("expected 2 values, got %#v", f[0])
	}
	if tif.Text[0] != "Composer One" || tif.Text[1] != "Composer Two" {
		t.Fatalf("got %v", tif.Text)
	}
}
