package id3

import (
	"bytes"
	"os"
)

// Parse reads every supported tag present in src (an ID3v2 header and/or a
// trailing ID3v1 tag) and returns them in the same priority order
// ProbeVersions uses: ID3v2 first. It returns ErrAbsentTag, never wrapped,
// when src has neither.
//
// A malformed individual frame does not abort the tag it belongs to: it is
// logged and dropped, and Parse keeps going. A truncated tag (the source
// ends before the declared size is satisfied) returns the partial tag built
// so far alongside the I/O error that ended it, so callers can decide
// whether a partial read is good enough.
func Parse(src Source) ([]*Tag, error) {
	versions, err := ProbeVersions(src)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, ErrAbsentTag
	}

	var tags []*Tag
	for _, v := range versions {
		var tag *Tag
		var err error
		if v.IsV2() {
			tag, err = decodeV2(src, v)
		} else {
			tag, err = decodeV1(src, v)
		}
		if tag != nil {
			tags = append(tags, tag)
		}
		if err != nil {
			return tags, err
		}
	}
	return tags, nil
}

// ParseOne is a convenience wrapper around Parse that returns only the
// highest-priority tag (ID3v2 over ID3v1).
func ParseOne(src Source) (*Tag, error) {
	tags, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return tags[0], nil
}

// Open opens the named file and parses its highest-priority tag. The
// returned *os.File must be closed by the caller.
func Open(name string) (*os.File, *Tag, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	tag, err := ParseOne(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, tag, nil
}

// ParseBytes is a convenience wrapper for callers that already have the
// whole file (or a representative slice of it) in memory.
func ParseBytes(data []byte) ([]*Tag, error) {
	return Parse(bytes.NewReader(data))
}
