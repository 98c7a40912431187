package id3

import "bytes"

// decodeFrameBody dispatches on hdr.id to build the right Frame type from
// buf, which is exactly the frame's body (every header and sub-field byte
// already stripped). Decode problems (bad encoding byte, a terminator that
// never shows up) come back as MalformedFrameError so the caller can drop
// just this one frame.
func decodeFrameBody(hdr FrameHeader, buf []byte, version TagVersion) (Frame, error) {
	switch {
	case hdr.id == "TXXX":
		return decodeUserTextFrame(hdr, buf, version)
	case hdr.id == "WXXX":
		return decodeUserURLFrame(hdr, buf, version)
	case hdr.id[0] == 'T':
		return decodeTextFrame(hdr, buf, version)
	case hdr.id[0] == 'W':
		return decodeURLFrame(hdr, buf)
	}

	switch hdr.id {
	case "UFID":
		return decodeUFIDFrame(hdr, buf)
	case "COMM":
		return decodeCommentLikeFrame(hdr, buf, version, true)
	case "USLT":
		return decodeCommentLikeFrame(hdr, buf, version, false)
	case "PRIV":
		return decodePrivateFrame(hdr, buf)
	case "APIC":
		return decodePictureFrame(hdr, buf, version)
	case "MCDI":
		return MusicCDIdentifierFrame{FrameHeader: hdr, TOC: buf}, nil
	case "PCNT":
		return PlayCounterFrame{FrameHeader: hdr, Count: decodeCounter(buf)}, nil
	case "POPM":
		return decodePopularimeterFrame(hdr, buf)
	case "IPLS", "TIPL", "TMCL":
		return decodeInvolvedPeopleFrame(hdr, buf, version)
	default:
		return UnsupportedFrame{FrameHeader: hdr, Data: buf}, nil
	}
}

func requireEncodingByte(hdr FrameHeader, buf []byte, version TagVersion) (Encoding, []byte, error) {
	if len(buf) < 1 {
		return 0, nil, MalformedFrameError{FrameID: hdr.id, Reason: "empty body, missing encoding byte"}
	}
	e := Encoding(buf[0])
	if e > EncodingUTF8 {
		return 0, nil, malformedEncoding(hdr.id, buf[0])
	}
	if version != VersionV2r4 && (e == EncodingUTF16BE || e == EncodingUTF8) {
		return 0, nil, malformedEncoding(hdr.id, buf[0])
	}
	return e, buf[1:], nil
}

// malformedEncoding wraps an UnsupportedEncodingError as a MalformedFrameError
// so the tag-level frame loop's single MalformedFrameError check drops just
// this frame, per UnsupportedEncodingError's own doc comment.
func malformedEncoding(id FrameType, b byte) MalformedFrameError {
	return MalformedFrameError{
		FrameID: id,
		Reason:  UnsupportedEncodingError{FrameID: id, Byte: b}.Error(),
	}
}

func decodeTextFrame(hdr FrameHeader, buf []byte, version TagVersion) (Frame, error) {
	if hdr.id == "TRDA" || hdr.id == "TSIZ" {
		return UnsupportedFrame{FrameHeader: hdr, Data: buf}, nil
	}
	e, rest, err := requireEncodingByte(hdr, buf, version)
	if err != nil {
		return nil, err
	}
	values, err := splitAllText(e, rest)
	if err != nil {
		return nil, err
	}
	return TextInformationFrame{FrameHeader: hdr, Text: values}, nil
}

func decodeUserTextFrame(hdr FrameHeader, buf []byte, version TagVersion) (Frame, error) {
	e, rest, err := requireEncodingByte(hdr, buf, version)
	if err != nil {
		return nil, err
	}
	parts := splitNullTerminatedN(e, rest, 2)
	if len(parts) < 2 {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing description/text terminator"}
	}
	desc, err := decodeText(e, parts[0])
	if err != nil {
		return nil, err
	}
	values, err := splitAllText(e, parts[1])
	if err != nil {
		return nil, err
	}
	return UserTextInformationFrame{FrameHeader: hdr, Description: desc, Text: values}, nil
}

func decodeURLFrame(hdr FrameHeader, buf []byte) (Frame, error) {
	url, err := decodeText(EncodingISO88591, buf)
	if err != nil {
		return nil, err
	}
	return URLLinkFrame{FrameHeader: hdr, URL: url}, nil
}

func decodeUserURLFrame(hdr FrameHeader, buf []byte, version TagVersion) (Frame, error) {
	e, rest, err := requireEncodingByte(hdr, buf, version)
	if err != nil {
		return nil, err
	}
	descBytes, urlBytes, ok := splitNullTerminated(e, rest)
	if !ok {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing description terminator"}
	}
	desc, err := decodeText(e, descBytes)
	if err != nil {
		return nil, err
	}
	url, err := decodeText(EncodingISO88591, urlBytes)
	if err != nil {
		return nil, err
	}
	return UserDefinedURLLinkFrame{FrameHeader: hdr, Description: desc, URL: url}, nil
}

func decodeUFIDFrame(hdr FrameHeader, buf []byte) (Frame, error) {
	ownerBytes, id, ok := splitNullTerminated(EncodingISO88591, buf)
	if !ok {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing owner terminator"}
	}
	owner, err := decodeText(EncodingISO88591, ownerBytes)
	if err != nil {
		return nil, err
	}
	return UniqueFileIdentifierFrame{FrameHeader: hdr, Owner: owner, Identifier: id}, nil
}

func decodeCommentLikeFrame(hdr FrameHeader, buf []byte, version TagVersion, isComment bool) (Frame, error) {
	e, rest, err := requireEncodingByte(hdr, buf, version)
	if err != nil {
		return nil, err
	}
	if len(rest) < 3 {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing language code"}
	}
	language := string(rest[:3])
	rest = rest[3:]

	parts := splitNullTerminatedN(e, rest, 2)
	if len(parts) < 2 {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing description terminator"}
	}
	desc, err := decodeText(e, parts[0])
	if err != nil {
		return nil, err
	}
	text, err := decodeText(e, parts[1])
	if err != nil {
		return nil, err
	}
	if isComment {
		return CommentFrame{FrameHeader: hdr, Language: language, Description: desc, Text: text}, nil
	}
	return UnsynchronisedLyricsFrame{FrameHeader: hdr, Language: language, Description: desc, Lyrics: text}, nil
}

func decodePrivateFrame(hdr FrameHeader, buf []byte) (Frame, error) {
	parts := bytes.SplitN(buf, []byte{0x00}, 2)
	if len(parts) < 2 {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing owner terminator"}
	}
	return PrivateFrame{FrameHeader: hdr, Owner: parts[0], Data: parts[1]}, nil
}

func decodePictureFrame(hdr FrameHeader, buf []byte, version TagVersion) (Frame, error) {
	e, rest, err := requireEncodingByte(hdr, buf, version)
	if err != nil {
		return nil, err
	}
	var mimeBytes []byte
	if version == VersionV2r0 {
		// ID3v2.2 PIC carries a fixed 3-character image format, not a MIME type.
		if len(rest) < 3 {
			return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing image format"}
		}
		mimeBytes, rest = rest[:3], rest[3:]
	} else {
		var ok bool
		mimeBytes, rest, ok = splitNullTerminated(EncodingISO88591, rest)
		if !ok {
			return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing MIME type terminator"}
		}
	}
	if len(rest) < 1 {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing picture type byte"}
	}
	pictureType := PictureType(rest[0])
	rest = rest[1:]

	descBytes, data, ok := splitNullTerminated(e, rest)
	if !ok {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing description terminator"}
	}
	mime, err := decodeText(EncodingISO88591, mimeBytes)
	if err != nil {
		return nil, err
	}
	desc, err := decodeText(e, descBytes)
	if err != nil {
		return nil, err
	}
	return PictureFrame{FrameHeader: hdr, MIMEType: mime, PictureType: pictureType, Description: desc, Data: data}, nil
}

func decodePopularimeterFrame(hdr FrameHeader, buf []byte) (Frame, error) {
	emailBytes, rest, ok := splitNullTerminated(EncodingISO88591, buf)
	if !ok {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing email terminator"}
	}
	if len(rest) < 1 {
		return nil, MalformedFrameError{FrameID: hdr.id, Reason: "missing rating byte"}
	}
	email, err := decodeText(EncodingISO88591, emailBytes)
	if err != nil {
		return nil, err
	}
	rating := rest[0]
	counter := decodeCounter(rest[1:])
	return PopularimeterFrame{FrameHeader: hdr, Email: email, Rating: rating, Counter: counter}, nil
}

func decodeInvolvedPeopleFrame(hdr FrameHeader, buf []byte, version TagVersion) (Frame, error) {
	e, rest, err := requireEncodingByte(hdr, buf, version)
	if err != nil {
		return nil, err
	}
	var people []InvolvedPerson
	for len(rest) > 0 {
		roleBytes, after1, ok := splitNullTerminated(e, rest)
		if !ok {
			break
		}
		nameBytes, after2, ok := splitNullTerminated(e, after1)
		if !ok {
			nameBytes, after2 = after1, nil
		}
		role, err := decodeText(e, roleBytes)
		if err != nil {
			return nil, err
		}
		name, err := decodeText(e, nameBytes)
		if err != nil {
			return nil, err
		}
		people = append(people, InvolvedPerson{Involvement: role, Name: name})
		rest = after2
	}
	return InvolvedPeopleListFrame{FrameHeader: hdr, People: people}, nil
}

func decodeCounter(buf []byte) uint64 {
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return v
}

// splitAllText splits raw into every null-terminated field it contains,
// the ID3v2.4 multi-value text convention; earlier versions only ever
// produce a single-element slice since they have no terminator to split on.
func splitAllText(e Encoding, raw []byte) ([]string, error) {
	var values []string
	remaining := raw
	for {
		field, rest, ok := splitNullTerminated(e, remaining)
		if !ok {
			s, err := decodeText(e, remaining)
			if err != nil {
				return nil, err
			}
			values = append(values, s)
			break
		}
		s, err := decodeText(e, field)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
		remaining = rest
		if len(remaining) == 0 {
			break
		}
	}
	return values, nil
}
