package id3

import (
	"errors"
	"io"
)

// TagVersion identifies which ID3 revision a tag uses.
type TagVersion int

const (
	// VersionUnknown is the zero value; never returned from a successful probe.
	VersionUnknown TagVersion = iota
	// VersionV1 marks an ID3v1 tag whose 1.0-vs-1.1 status is ambiguous
	// (both the track-number marker byte and the track number itself are zero).
	VersionV1
	// VersionV1r0 is an unambiguous ID3v1.0 tag (no track number stored).
	VersionV1r0
	// VersionV1r1 is an ID3v1.1 tag (track number present in the last comment byte).
	VersionV1r1
	// VersionV2r0 is ID3v2.2.
	VersionV2r0
	// VersionV2r3 is ID3v2.3.
	VersionV2r3
	// VersionV2r4 is ID3v2.4.
	VersionV2r4
)

func (v TagVersion) String() string {
	switch v {
	case VersionV1:
		return "ID3v1"
	case VersionV1r0:
		return "ID3v1.0"
	case VersionV1r1:
		return "ID3v1.1"
	case VersionV2r0:
		return "ID3v2.2"
	case VersionV2r3:
		return "ID3v2.3"
	case VersionV2r4:
		return "ID3v2.4"
	default:
		return "unknown"
	}
}

// IsV2 reports whether v names one of the ID3v2 revisions.
func (v TagVersion) IsV2() bool {
	return v == VersionV2r0 || v == VersionV2r3 || v == VersionV2r4
}

// IsV1 reports whether v names one of the ID3v1 revisions.
func (v TagVersion) IsV1() bool {
	return v == VersionV1 || v == VersionV1r0 || v == VersionV1r1
}

// Source is the byte source the version probe and the tag readers operate
// on: sequential reads, plus seeking so the v1 probe/reader can reach the
// trailing 128 bytes and the decoder can rewind to re-read the header.
type Source interface {
	io.Reader
	io.Seeker
}

func sourceSize(s Source) (int64, error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// ProbeVersion returns the single highest-priority version present in src:
// an ID3v2 tag beats a trailing ID3v1 tag. ok is false when neither is
// present; that is not an error condition.
func ProbeVersion(src Source) (version TagVersion, ok bool, err error) {
	versions, err := ProbeVersions(src)
	if err != nil {
		return VersionUnknown, false, err
	}
	if len(versions) == 0 {
		return VersionUnknown, false, nil
	}
	return versions[0], true, nil
}

// ProbeVersions returns every recognised tag version present in src, ID3v2
// first. It never returns an error for the mere absence of a tag.
func ProbeVersions(src Source) ([]TagVersion, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var versions []TagVersion

	v2, hasV2, err := probeV2(src)
	if err != nil {
		return nil, err
	}
	if hasV2 {
		versions = append(versions, v2)
	}

	v1, hasV1, err := probeV1(src)
	if err != nil {
		return nil, err
	}
	if hasV1 {
		versions = append(versions, v1)
	}

	return versions, nil
}

func probeV2(src Source) (TagVersion, bool, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return VersionUnknown, false, err
	}

	var header [5]byte
	n, err := io.ReadFull(src, header[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return VersionUnknown, false, nil
		}
		return VersionUnknown, false, err
	}
	if n != len(header) || string(header[:3]) != "ID3" {
		return VersionUnknown, false, nil
	}

	switch header[3] {
	case 0:
		return VersionV2r0, true, nil
	case 3:
		return VersionV2r3, true, nil
	case 4:
		return VersionV2r4, true, nil
	default:
		return VersionUnknown, false, nil
	}
}

func probeV1(src Source) (TagVersion, bool, error) {
	size, err := sourceSize(src)
	if err != nil {
		return VersionUnknown, false, err
	}
	if size < 128 {
		return VersionUnknown, false, nil
	}

	if _, err := src.Seek(size-128, io.SeekStart); err != nil {
		return VersionUnknown, false, err
	}
	var marker [3]byte
	if _, err := io.ReadFull(src, marker[:]); err != nil {
		return VersionUnknown, false, err
	}
	if string(marker[:]) != "TAG" {
		return VersionUnknown, false, nil
	}

	if _, err := src.Seek(size-3, io.SeekStart); err != nil {
		return VersionUnknown, false, err
	}
	var tail [2]byte
	if _, err := io.ReadFull(src, tail[:]); err != nil {
		return VersionUnknown, false, err
	}

	switch {
	case tail[0] == 0 && tail[1] != 0:
		return VersionV1r1, true, nil
	case tail[0] == 0 && tail[1] == 0:
		return VersionV1, true, nil
	default:
		return VersionUnknown, false, nil
	}
}
