package id3

import (
	"bytes"
	"testing"
)

func buildV1r1Tag(title, artist, album, year, comment string, track byte) []byte {
	tag := make([]byte, 128)
	copy(tag[0:3], "TAG")
	copy(tag[3:33], title)
	copy(tag[33:63], artist)
	copy(tag[63:93], album)
	copy(tag[93:97], year)
	copy(tag[97:125], comment)
	tag[125] = 0
	tag[126] = track
	tag[127] = 17 // Rock
	return tag
}

func TestDecodeV1r1(t *testing.T) {
	data := buildV1r1Tag("Title", "Artist", "Album", "1999", "A comment", 5)
	tag, err := ParseOne(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if tag.Version != VersionV1r1 {
		t.Fatalf("version = %v, want VersionV1r1", tag.Version)
	}
	if tag.Title() != "Title" || tag.Artist() != "Artist" || tag.Album() != "Album" {
		t.Fatalf("got title=%q artist=%q album=%q", tag.Title(), tag.Artist(), tag.Album())
	}
	if tag.TrackNumber() != "5" {
		t.Fatalf("track = %q, want 5", tag.TrackNumber())
	}
}

func TestDecodeV1NoTrackWhenAmbiguous(t *testing.T) {
	tag := make([]byte, 128)
	copy(tag[0:3], "TAG")
	copy(tag[3:33], "Title")
	tag[125] = 0
	tag[126] = 0
	tag[127] = 0

	decoded, err := ParseOne(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("ParseOne: %v", err)
	}
	if decoded.Version != VersionV1 {
		t.Fatalf("version = %v, want VersionV1", decoded.Version)
	}
	if decoded.HasFrame("TRCK") {
		t.Fatalf("did not expect a track number for an ambiguous v1.0/1.1 tag")
	}
}

func TestDecodeV1AbsentWithoutMarker(t *testing.T) {
	data := make([]byte, 200)
	_, err := ParseOne(bytes.NewReader(data))
	if err != ErrAbsentTag {
		t.Fatalf("err = %v, want ErrAbsentTag", err)
	}
}
