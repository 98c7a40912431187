package id3

import (
	"errors"
	"fmt"
)

// ErrAbsentTag is returned (never wrapped) when no supported tag was found.
// It is not an error condition callers need to act on; probing a file
// without a tag is an expected outcome.
var ErrAbsentTag = errors.New("id3: no supported tag found")

// NotATagHeaderError reports that the expected magic bytes were missing.
// It is treated identically to ErrAbsentTag by every exported entry point.
type NotATagHeaderError struct {
	Magic [3]byte
}

func (e NotATagHeaderError) Error() string {
	return fmt.Sprintf("id3: not a tag header: %q", e.Magic[:])
}

// UnsupportedVersionError reports a major/revision combination this package
// does not know how to read. Per the spec it behaves as ErrAbsentTag.
type UnsupportedVersionError struct {
	Major    byte
	Revision byte
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("id3: unsupported version 2.%d.%d", e.Major, e.Revision)
}

// MalformedFrameError reports that a single frame's body violated its
// encoding rules. The tag reader drops the offending frame and continues
// with the next one; it does not abort the whole tag.
type MalformedFrameError struct {
	FrameID FrameType
	Reason  string
}

func (e MalformedFrameError) Error() string {
	return fmt.Sprintf("id3: malformed %s frame: %s", e.FrameID, e.Reason)
}

// UnsupportedEncodingError reports an encoding byte outside {0,1,2,3}, or a
// value disallowed for the tag's version (2 and 3 require v2.4). It is
// always surfaced as a MalformedFrameError to callers.
type UnsupportedEncodingError struct {
	FrameID FrameType
	Byte    byte
}

func (e UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("id3: unsupported text encoding byte 0x%02x in %s", e.Byte, e.FrameID)
}

// InvalidSizeError reports an ID3v2.4 extended-header size field with a
// high bit set somewhere, or one below the minimum extended-header size.
// It is fatal: no frame of the tag is read. An invalid size in the tag
// header itself is reported as ErrAbsentTag instead.
type InvalidSizeError struct {
	Context string
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("id3: invalid size in %s", e.Context)
}
