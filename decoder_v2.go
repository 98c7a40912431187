package id3

import (
	"errors"
	"io"
)

// errPadding signals that the frame loop has reached the zero-byte padding
// that follows the last real frame; the loop stops there without error.
var errPadding = errors.New("id3: padding reached")

// frameSource is satisfied by both the unsynchronised and plain frame
// readers; Consumed reports bytes read from the underlying, tag-size-
// limited stream so the frame loop knows when it has exhausted the tag.
type frameSource interface {
	io.Reader
	Consumed() int64
}

type plainCounter struct {
	r io.Reader
	n int64
}

func (c *plainCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *plainCounter) Consumed() int64 { return c.n }

// decodeV2 reads an ID3v2.2, v2.3 or v2.4 tag, which must start at offset
// 0 of src; decodeV2 seeks there itself.
func decodeV2(src Source, version TagVersion) (*Tag, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var header [10]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		return nil, err
	}
	if string(header[0:3]) != "ID3" {
		return nil, NotATagHeaderError{Magic: [3]byte{header[0], header[1], header[2]}}
	}

	flagsByte := header[5]
	var sizeBytes [4]byte
	copy(sizeBytes[:], header[6:10])
	tagSize, ok := decodeSyncSafe4(sizeBytes)
	if !ok {
		return nil, ErrAbsentTag
	}
	if version == VersionV2r0 && flagsByte&0x40 != 0 {
		// Bit 6 is the ID3v2.2 compression flag; compressed tags are ignored.
		return nil, ErrAbsentTag
	}

	flags := TagFlags{
		Unsynchronised: flagsByte&0x80 != 0,
		ExtendedHeader: flagsByte&0x40 != 0,
		Experimental:   flagsByte&0x20 != 0,
	}
	if version == VersionV2r4 {
		flags.HasFooter = flagsByte&0x10 != 0
	}

	tag := &Tag{Version: version, Flags: flags, Frames: make(map[FrameType][]Frame)}

	raw := io.LimitReader(src, int64(tagSize))
	var body frameSource
	if flags.Unsynchronised {
		body = newUnsyncReader(raw)
	} else {
		body = &plainCounter{r: raw}
	}

	if flags.ExtendedHeader && version.IsV2() && version != VersionV2r0 {
		ext, isUpdate, err := readExtendedHeader(body, version)
		if err != nil {
			return tag, err
		}
		tag.Extended = ext
		tag.Flags.IsUpdate = isUpdate
	}

	headerSize := int64(10)
	if version == VersionV2r0 {
		headerSize = 6
	}
	// Fewer bytes left than a frame header needs are padding.
	for int64(tagSize)-body.Consumed() >= headerSize {
		frame, err := readFrame(body, version, flags.Unsynchronised)
		if err != nil {
			if err == errPadding {
				break
			}
			if mfe, ok := err.(MalformedFrameError); ok {
				Logger.Warn().Str("frame", string(mfe.FrameID)).Msg(mfe.Error())
				continue
			}
			return tag, err
		}
		if frame != nil {
			tag.AddFrame(frame)
		}
	}

	return tag, nil
}

// readExtendedHeader reads the ID3v2.3/2.4 extended header. For v2.3 the
// declared size and the optional CRC are recorded (the padding-size field is
// read but not exposed); for v2.4 the CRC and tag-restriction sub-fields are
// decoded as well.
func readExtendedHeader(body frameSource, version TagVersion) (*ExtendedHeader, bool, error) {
	if version == VersionV2r3 {
		var buf [10]byte
		if _, err := io.ReadFull(body, buf[:]); err != nil {
			return nil, false, err
		}
		size := decodeBigEndian4([4]byte{buf[0], buf[1], buf[2], buf[3]})
		crcPresent := buf[4]&0x80 != 0
		ext := &ExtendedHeader{Size: size}
		if crcPresent {
			var crc [4]byte
			if _, err := io.ReadFull(body, crc[:]); err != nil {
				return nil, false, err
			}
			ext.CRCPresent = true
			ext.CRC = uint64(decodeBigEndian4(crc))
		}
		return ext, false, nil
	}

	// ID3v2.4
	var sizeBytes [4]byte
	if _, err := io.ReadFull(body, sizeBytes[:]); err != nil {
		return nil, false, err
	}
	extSize, ok := decodeSyncSafe4(sizeBytes)
	if !ok || extSize < 6 {
		return nil, false, InvalidSizeError{Context: "extended header size"}
	}

	var nFlagBytes [1]byte
	if _, err := io.ReadFull(body, nFlagBytes[:]); err != nil {
		return nil, false, err
	}
	ext := &ExtendedHeader{Size: extSize}
	isUpdate := false
	if nFlagBytes[0] != 1 {
		Logger.Warn().Int("flagBytes", int(nFlagBytes[0])).Msg("id3: extended header flag-byte count is not 1")
		return ext, false, nil
	}

	var flagByte [1]byte
	if _, err := io.ReadFull(body, flagByte[:]); err != nil {
		return nil, false, err
	}
	isUpdate = flagByte[0]&0x40 != 0
	crcPresent := flagByte[0]&0x20 != 0
	restrictionsSet := flagByte[0]&0x10 != 0

	if isUpdate {
		var n [1]byte
		if _, err := io.ReadFull(body, n[:]); err != nil {
			return nil, false, err
		}
	}
	if crcPresent {
		var length [1]byte
		if _, err := io.ReadFull(body, length[:]); err != nil {
			return nil, false, err
		}
		if length[0] == 5 {
			var crc [5]byte
			if _, err := io.ReadFull(body, crc[:]); err != nil {
				return nil, false, err
			}
			ext.CRCPresent = true
			ext.CRC = decodeSyncSafe35(crc)
		}
	}
	if restrictionsSet {
		var length [1]byte
		if _, err := io.ReadFull(body, length[:]); err != nil {
			return nil, false, err
		}
		if length[0] == 1 {
			var r [1]byte
			if _, err := io.ReadFull(body, r[:]); err != nil {
				return nil, false, err
			}
			ext.RestrictionsSet = true
			ext.TagSizeRestriction = (r[0] & 0xc0) >> 6
			ext.TextEncodingRestriction = (r[0] & 0x20) >> 5
			ext.TextFieldsSizeRestriction = (r[0] & 0x18) >> 3
			ext.ImageEncodingRestriction = (r[0] & 0x04) >> 2
			ext.ImageSizeRestriction = r[0] & 0x03
		}
	}

	return ext, isUpdate, nil
}

// readFrame reads one frame header plus its body and decodes it. Any error
// decoding the body (bad encoding byte, missing terminator) is returned as
// a MalformedFrameError so the caller can drop just this frame; the body is
// always read in full first so the stream stays aligned for the next frame
// regardless of what went wrong inside it.
func readFrame(body frameSource, version TagVersion, tagUnsync bool) (Frame, error) {
	if version == VersionV2r0 {
		return readFrameV2r0(body)
	}
	return readFrameV2r34(body, version, tagUnsync)
}

func readFrameV2r0(body frameSource) (Frame, error) {
	var idBytes [3]byte
	if _, err := io.ReadFull(body, idBytes[:]); err != nil {
		return nil, err
	}
	if idBytes == [3]byte{0, 0, 0} {
		return nil, errPadding
	}

	var sizeBytes [3]byte
	if _, err := io.ReadFull(body, sizeBytes[:]); err != nil {
		return nil, err
	}
	size := int(sizeBytes[0])<<16 | int(sizeBytes[1])<<8 | int(sizeBytes[2])

	wireID := FrameType(idBytes[:])
	id := wireID
	if upgraded, ok := frameTableV2r0[wireID]; ok {
		id = upgraded
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(body, buf); err != nil {
		return nil, err
	}

	hdr := FrameHeader{id: id, kind: canonicalKindOf(id), totalFrameSize: 6 + size}
	return decodeFrameBody(hdr, buf, VersionV2r0)
}

func readFrameV2r34(body frameSource, version TagVersion, tagUnsync bool) (Frame, error) {
	var idBytes [4]byte
	if _, err := io.ReadFull(body, idBytes[:]); err != nil {
		return nil, err
	}
	if idBytes == [4]byte{0, 0, 0, 0} {
		return nil, errPadding
	}

	var sizeBytes [4]byte
	if _, err := io.ReadFull(body, sizeBytes[:]); err != nil {
		return nil, err
	}
	var size int
	if version == VersionV2r4 {
		v, ok := decodeSyncSafe4(sizeBytes)
		if !ok {
			return nil, MalformedFrameError{FrameID: FrameType(idBytes[:]), Reason: "invalid sync-safe frame size"}
		}
		size = v
	} else {
		size = decodeBigEndian4(sizeBytes)
	}

	var flagBytes [2]byte
	if _, err := io.ReadFull(body, flagBytes[:]); err != nil {
		return nil, err
	}

	id := FrameType(idBytes[:])
	declaredSize := size
	flags, err := decodeFrameFlags(body, id, flagBytes, version, &size)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, MalformedFrameError{FrameID: id, Reason: "sub-field length exceeds declared frame size"}
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(body, buf); err != nil {
		return nil, err
	}

	// A frame-level unsync flag with no tag-level unsync means the tag
	// reader above hasn't unwound this frame's stuffing; do it here. When
	// the tag-level flag is already set, body is an unsyncReader and buf
	// has already been collapsed on the way in.
	if flags.Unsynchronised && !tagUnsync {
		buf = decodeUnsyncBytes(buf)
	}

	kind := canonicalKindOf(id)
	hdr := FrameHeader{id: id, kind: kind, totalFrameSize: 10 + declaredSize, flags: flags}
	return decodeFrameBody(hdr, buf, version)
}

// decodeFrameFlags parses the 2-byte frame flags field and any sub-fields
// it introduces (group id, encryption method, compressed/data-length size),
// subtracting their width from *size so the caller reads exactly the
// payload that remains. v2.3 and v2.4 use different bit positions and a
// different sub-field order; see frametables.go for the DISCARD_WHEN_FILE_ALTERED
// sets this also consults.
func decodeFrameFlags(body frameSource, id FrameType, raw [2]byte, version TagVersion, size *int) (FrameFlags, error) {
	v := int(raw[0])<<8 | int(raw[1])
	var flags FrameFlags

	if version == VersionV2r3 {
		flags.DiscardOnTagAlter = v&0x8000 != 0
		flags.DiscardOnFileAlter = v&0x4000 != 0 || discardOnFileAlterV2r3[id]
		flags.ReadOnly = v&0x2000 != 0
		flags.Compressed = v&0x0080 != 0
		flags.Encrypted = v&0x0040 != 0
		flags.GroupingIdentity = v&0x0020 != 0

		if flags.Compressed {
			var dl [4]byte
			if _, err := io.ReadFull(body, dl[:]); err != nil {
				return flags, err
			}
			flags.HasDataLength = true
			flags.DataLength = decodeBigEndian4(dl)
			*size -= 4
		}
		if flags.Encrypted {
			var m [1]byte
			if _, err := io.ReadFull(body, m[:]); err != nil {
				return flags, err
			}
			flags.EncryptionMethod = m[0]
			*size--
		}
		if flags.GroupingIdentity {
			var g [1]byte
			if _, err := io.ReadFull(body, g[:]); err != nil {
				return flags, err
			}
			flags.GroupID = g[0]
			*size--
		}
		return flags, nil
	}

	// ID3v2.4
	flags.DiscardOnTagAlter = v&0x4000 != 0
	flags.DiscardOnFileAlter = v&0x2000 != 0 || discardOnFileAlterV2r4[id]
	flags.ReadOnly = v&0x1000 != 0
	flags.GroupingIdentity = v&0x0040 != 0
	flags.Compressed = v&0x0008 != 0
	flags.Encrypted = v&0x0004 != 0
	flags.Unsynchronised = v&0x0002 != 0
	flags.HasDataLength = v&0x0001 != 0

	if flags.GroupingIdentity {
		var g [1]byte
		if _, err := io.ReadFull(body, g[:]); err != nil {
			return flags, err
		}
		flags.GroupID = g[0]
		*size--
	}
	if flags.Encrypted {
		var m [1]byte
		if _, err := io.ReadFull(body, m[:]); err != nil {
			return flags, err
		}
		flags.EncryptionMethod = m[0]
		*size--
	}
	if flags.HasDataLength {
		var dl [4]byte
		if _, err := io.ReadFull(body, dl[:]); err != nil {
			return flags, err
		}
		v, ok := decodeSyncSafe4(dl)
		if !ok {
			return flags, MalformedFrameError{FrameID: id, Reason: "invalid sync-safe data-length indicator"}
		}
		flags.DataLength = v
		*size -= 4
	}
	return flags, nil
}
