package id3

import (
	"encoding/hex"
	"strconv"
)

// FrameType is a frame's identifier as it appears on the wire: three
// characters in ID3v2.2, four in ID3v2.3 and ID3v2.4. Decoded frames carry
// the modern four-character spelling in their header when one is known (the
// v2.2 decoder upgrades 3-character ids via frameTableV2r0); a v2.2
// identifier with no entry in that table keeps its three-character spelling.
type FrameType string

func (t FrameType) String() string { return string(t) }

// CanonicalFrameKind identifies a frame's meaning independent of which
// version's identifier spelled it. TCON means "content type" whether it
// arrived as TCO (v2.2), TCON (v2.3) or TCON (v2.4); code that wants to find
// the genre frame regardless of tag version switches on this, not on the
// raw FrameType.
type CanonicalFrameKind int

const (
	KindUnknown CanonicalFrameKind = iota
	KindTitle
	KindArtist
	KindAlbum
	KindAlbumArtist
	KindComposer
	KindGenre
	KindYear
	KindRecordingTime
	KindReleaseTime
	KindTrackNumber
	KindPartOfSet
	KindComment
	KindUnsynchronisedLyrics
	KindPicture
	KindUserText
	KindUserURL
	KindUniqueFileIdentifier
	KindMusicCDIdentifier
	KindPrivate
	KindURLLink
	KindPlayCounter
	KindPopularimeter
	KindEncodedBy
	KindLength
	KindPublisher
	KindCopyright
	KindLanguage
	KindInvolvedPeopleList
	KindOther
)

// FrameFlags is the decoded, version-independent view of a frame's status
// and format flags. The v2.3 and v2.4 bit layouts differ (see
// frametables.go); the version-specific decoders normalise into this shape
// so the rest of the package never has to branch on tag version again.
type FrameFlags struct {
	DiscardOnTagAlter  bool
	DiscardOnFileAlter bool
	ReadOnly           bool
	GroupingIdentity   bool
	Compressed         bool
	Encrypted          bool
	Unsynchronised     bool
	HasDataLength      bool
	GroupID            byte
	EncryptionMethod   byte
	DataLength         int
}

// FrameHeader is the version-independent frame envelope: identity, its
// normalised flags, and the total size of the frame on the wire (header
// plus body) as declared by the tag.
type FrameHeader struct {
	id              FrameType
	kind            CanonicalFrameKind
	totalFrameSize  int
	flags           FrameFlags
}

func (h FrameHeader) ID() FrameType                 { return h.id }
func (h FrameHeader) Kind() CanonicalFrameKind       { return h.kind }
func (h FrameHeader) Flags() FrameFlags              { return h.flags }
func (h FrameHeader) Size() int                      { return h.totalFrameSize }
func (h FrameHeader) Header() FrameHeader            { return h }

// Frame is satisfied by every decoded frame payload type. Value returns a
// human-displayable rendering of the frame's primary content; it is meant
// for diagnostics and the CLI's dump command, not for round-tripping.
type Frame interface {
	ID() FrameType
	Kind() CanonicalFrameKind
	Header() FrameHeader
	Value() string
}

// TextInformationFrame covers the T000-TZZZ family (TIT2, TPE1, TALB, ...)
// except TXXX, which has its own type because it carries a Description.
type TextInformationFrame struct {
	FrameHeader
	Text []string // ID3v2.4 allows multiple null-separated values; v2.3 and v1 always have exactly one
}

func (f TextInformationFrame) Value() string {
	if len(f.Text) == 0 {
		return ""
	}
	return f.Text[0]
}

// UserTextInformationFrame is TXXX: a text frame carrying a free-form
// description alongside its value, used for tags with no dedicated frame.
type UserTextInformationFrame struct {
	FrameHeader
	Description string
	Text        []string
}

func (f UserTextInformationFrame) Value() string {
	if len(f.Text) == 0 {
		return ""
	}
	return f.Text[0]
}

// UniqueFileIdentifierFrame is UFID: an owner string (e.g. a URL naming the
// identifier scheme) paired with an opaque identifier.
type UniqueFileIdentifierFrame struct {
	FrameHeader
	Owner      string
	Identifier []byte
}

func (f UniqueFileIdentifierFrame) Value() string { return string(f.Identifier) }

// URLLinkFrame covers the W000-WZZZ family except WXXX.
type URLLinkFrame struct {
	FrameHeader
	URL string
}

func (f URLLinkFrame) Value() string { return f.URL }

// UserDefinedURLLinkFrame is WXXX.
type UserDefinedURLLinkFrame struct {
	FrameHeader
	Description string
	URL         string
}

func (f UserDefinedURLLinkFrame) Value() string { return f.URL }

// CommentFrame is COMM: a 3-letter language code, a short description, and
// the comment body. Multiple COMM frames may coexist if their language or
// description differs.
type CommentFrame struct {
	FrameHeader
	Language    string
	Description string
	Text        string
}

func (f CommentFrame) Value() string { return f.Text }

// UnsynchronisedLyricsFrame is USLT, structurally identical to CommentFrame.
type UnsynchronisedLyricsFrame struct {
	FrameHeader
	Language    string
	Description string
	Lyrics      string
}

func (f UnsynchronisedLyricsFrame) Value() string { return f.Lyrics }

// PrivateFrame is PRIV: an owner identifier (usually a reverse-DNS or URL
// string, stored as raw ISO-8859-1 bytes) plus an opaque payload.
type PrivateFrame struct {
	FrameHeader
	Owner []byte
	Data  []byte
}

func (f PrivateFrame) Value() string { return string(f.Data) }

// PictureType enumerates APIC's picture-type byte (front cover, artist, ...).
type PictureType byte

func (p PictureType) String() string {
	if int(p) < len(PictureTypes) {
		return PictureTypes[p]
	}
	return "Unknown"
}

// PictureFrame is APIC.
type PictureFrame struct {
	FrameHeader
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

func (f PictureFrame) Value() string { return f.Description }

// MusicCDIdentifierFrame is MCDI: the raw CD table-of-contents bytes as
// written onto the CD's lead-in. Value renders them as a lower-case hex
// string for display (see MCIFrameReader.java, which does the same).
type MusicCDIdentifierFrame struct {
	FrameHeader
	TOC []byte
}

func (f MusicCDIdentifierFrame) Value() string { return hex.EncodeToString(f.TOC) }

// PlayCounterFrame is PCNT: a counter with no fixed width, stored as the
// widest integer that fits (it grows past 32 bits on heavily-played files).
type PlayCounterFrame struct {
	FrameHeader
	Count uint64
}

func (f PlayCounterFrame) Value() string { return strconv.Itoa(int(f.Count)) }

// PopularimeterFrame is POPM: an email identifying the rating's owner, a
// 0-255 rating, and a play counter with the same unbounded-width rule as
// PCNT.
type PopularimeterFrame struct {
	FrameHeader
	Email   string
	Rating  byte
	Counter uint64
}

func (f PopularimeterFrame) Value() string { return strconv.Itoa(int(f.Rating)) }

// InvolvedPeopleListFrame is IPLS (v2.3) / TIPL-TMCL (v2.4): alternating
// role/name pairs.
type InvolvedPeopleListFrame struct {
	FrameHeader
	People []InvolvedPerson
}

type InvolvedPerson struct {
	Involvement string
	Name        string
}

func (f InvolvedPeopleListFrame) Value() string {
	if len(f.People) == 0 {
		return ""
	}
	return f.People[0].Name
}

// UnsupportedFrame is the fallback for any identifier this package has no
// dedicated decoder for: the body is kept verbatim so a round-trip encoder
// (or a caller that only cares about a different frame) doesn't lose data.
type UnsupportedFrame struct {
	FrameHeader
	Data []byte
}

func (f UnsupportedFrame) Value() string { return string(f.Data) }
