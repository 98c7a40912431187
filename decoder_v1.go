package id3

import (
	"bytes"
	"io"
	"strconv"
)

const tagSizeV1 = 128

// v1GenreCount is the number of entries in the ID3v1 genre table including
// the Winamp extension (0-191); a genre byte at or above it names no genre.
const v1GenreCount = 192

// decodeV1 reads the trailing 128-byte ID3v1/1.1 tag from src. Callers
// should have already probed the version (see ProbeVersion); decodeV1 does
// not re-check the "TAG" marker's position, it trusts the version that was
// passed in and always seeks to the last 128 bytes of the source.
func decodeV1(src Source, version TagVersion) (*Tag, error) {
	size, err := sourceSize(src)
	if err != nil {
		return nil, err
	}
	if size < tagSizeV1 {
		return nil, ErrAbsentTag
	}
	if _, err := src.Seek(size-tagSizeV1, io.SeekStart); err != nil {
		return nil, err
	}

	var raw [tagSizeV1]byte
	if _, err := io.ReadFull(src, raw[:]); err != nil {
		return nil, err
	}
	if !bytes.Equal(raw[0:3], []byte("TAG")) {
		return nil, ErrAbsentTag
	}

	title := trimV1(raw[3:33])
	artist := trimV1(raw[33:63])
	album := trimV1(raw[63:93])
	year := trimV1(raw[93:97])

	var comment string
	var track byte
	hasTrack := false

	if version == VersionV1r1 {
		comment = trimV1(raw[97:125])
		track = raw[126]
		hasTrack = raw[125] == 0
	} else {
		comment = trimV1(raw[97:127])
	}
	genre := raw[127]

	tag := &Tag{Version: version, Frames: make(map[FrameType][]Frame)}
	addTextFrame(tag, "TIT2", KindTitle, title)
	addTextFrame(tag, "TPE1", KindArtist, artist)
	addTextFrame(tag, "TALB", KindAlbum, album)
	addTextFrame(tag, "TYER", KindYear, year)
	if comment != "" {
		tag.AddFrame(CommentFrame{
			FrameHeader: FrameHeader{id: "COMM", kind: KindComment},
			Language:    "eng",
			Text:        comment,
		})
	}
	if hasTrack {
		addTextFrame(tag, "TRCK", KindTrackNumber, strconv.Itoa(int(track)))
	}
	if int(genre) < v1GenreCount {
		addTextFrame(tag, "TCON", KindGenre, genreRefinement(genre))
	}

	return tag, nil
}

func genreRefinement(b byte) string {
	return "(" + strconv.Itoa(int(b)) + ")"
}

func addTextFrame(tag *Tag, id FrameType, kind CanonicalFrameKind, value string) {
	if value == "" {
		return
	}
	tag.AddFrame(TextInformationFrame{
		FrameHeader: FrameHeader{id: id, kind: kind},
		Text:        []string{value},
	})
}

// trimV1 strips trailing NUL padding and trailing spaces, the two padding
// conventions ID3v1 writers use interchangeably.
func trimV1(b []byte) string {
	i := bytes.IndexByte(b, 0x00)
	if i >= 0 {
		b = b[:i]
	}
	return string(bytes.TrimRight(b, " "))
}
