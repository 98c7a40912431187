package id3

import (
	"io"
)

// Encode writes t as an ID3v2.4 tag. It does not attempt to reproduce the
// tag's original version or extended header; every encoded tag is a fresh
// ID3v2.4 tag with no extended header and no unsynchronisation, which keeps
// the encoder simple and always produces a tag any reader in this package
// can decode back.
func (t *Tag) Encode(w io.Writer) error {
	var body []byte
	for _, frames := range t.Frames {
		for _, f := range frames {
			encoded, ok := encodeFrameBody(f)
			if !ok {
				continue
			}
			body = append(body, encodeFrameHeader(f.ID(), len(encoded))...)
			body = append(body, encoded...)
		}
	}

	header := make([]byte, 10)
	copy(header[0:3], "ID3")
	header[3] = 4
	header[4] = 0
	header[5] = 0
	sizeBytes := encodeSyncSafe4(len(body))
	copy(header[6:10], sizeBytes[:])

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func encodeFrameHeader(id FrameType, bodySize int) []byte {
	out := make([]byte, 10)
	copy(out[0:4], id)
	sizeBytes := encodeSyncSafe4(bodySize)
	copy(out[4:8], sizeBytes[:])
	return out
}

// encodeFrameBody renders a frame's body (everything after the 10-byte
// frame header). ok is false for frame types this package only ever reads
// (InvolvedPeopleListFrame, PlayCounterFrame, PopularimeterFrame), which
// are uncommon to write back and are left for a future encoder revision.
func encodeFrameBody(f Frame) ([]byte, bool) {
	switch v := f.(type) {
	case TextInformationFrame:
		return encodeTextValues(v.Text), true
	case UserTextInformationFrame:
		out := []byte{byte(EncodingUTF8)}
		out = append(out, []byte(v.Description)...)
		out = append(out, 0x00)
		out = append(out, encodeTextValues(v.Text)[1:]...)
		return out, true
	case URLLinkFrame:
		return []byte(v.URL), true
	case UserDefinedURLLinkFrame:
		out := []byte{byte(EncodingUTF8)}
		out = append(out, []byte(v.Description)...)
		out = append(out, 0x00)
		out = append(out, []byte(v.URL)...)
		return out, true
	case CommentFrame:
		out := []byte{byte(EncodingUTF8)}
		out = append(out, languageBytes(v.Language)...)
		out = append(out, []byte(v.Description)...)
		out = append(out, 0x00)
		out = append(out, []byte(v.Text)...)
		return out, true
	case UnsynchronisedLyricsFrame:
		out := []byte{byte(EncodingUTF8)}
		out = append(out, languageBytes(v.Language)...)
		out = append(out, []byte(v.Description)...)
		out = append(out, 0x00)
		out = append(out, []byte(v.Lyrics)...)
		return out, true
	case UniqueFileIdentifierFrame:
		out := []byte(v.Owner)
		out = append(out, 0x00)
		out = append(out, v.Identifier...)
		return out, true
	case PrivateFrame:
		out := append([]byte{}, v.Owner...)
		out = append(out, 0x00)
		out = append(out, v.Data...)
		return out, true
	case MusicCDIdentifierFrame:
		return v.TOC, true
	case PictureFrame:
		out := []byte{byte(EncodingUTF8)}
		out = append(out, []byte(v.MIMEType)...)
		out = append(out, 0x00)
		out = append(out, byte(v.PictureType))
		out = append(out, []byte(v.Description)...)
		out = append(out, 0x00)
		out = append(out, v.Data...)
		return out, true
	case UnsupportedFrame:
		return v.Data, true
	default:
		return nil, false
	}
}

func languageBytes(lang string) []byte {
	out := []byte(lang)
	for len(out) < 3 {
		out = append(out, ' ')
	}
	return out[:3]
}

// encodeTextValues renders a text-information body: an encoding byte
// followed by its values joined with NUL, the ID3v2.4 multi-value
// convention. A single-value frame encodes identically to earlier versions.
func encodeTextValues(values []string) []byte {
	out := []byte{byte(EncodingUTF8)}
	for i, v := range values {
		if i > 0 {
			out = append(out, 0x00)
		}
		out = append(out, []byte(v)...)
	}
	return out
}
