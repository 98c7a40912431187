package id3

// TagFlags is the decoded, version-independent view of the ID3v2 header
// flags byte. Footer and tag-is-update are ID3v2.4-only; they read false
// for tags decoded from an earlier version.
type TagFlags struct {
	Unsynchronised bool
	ExtendedHeader bool
	Experimental   bool
	HasFooter      bool
	IsUpdate       bool
}

// ExtendedHeader carries the subset of the ID3v2.3/2.4 extended header this
// package decodes. CRC and restrictions are zero-valued when absent.
type ExtendedHeader struct {
	Size              int
	CRCPresent        bool
	CRC               uint64
	RestrictionsSet   bool
	TagSizeRestriction byte
	TextEncodingRestriction byte
	TextFieldsSizeRestriction byte
	ImageEncodingRestriction byte
	ImageSizeRestriction byte
}

// Tag is a fully decoded ID3 tag: either an ID3v1/1.1 trailer or an ID3v2
// header plus its frames. Frames are kept in arrival order within each
// identifier's slice; callers that need "the" value of a single-instance
// frame should use the Getter methods below rather than indexing Frames
// directly.
type Tag struct {
	Version        TagVersion
	Flags          TagFlags
	Extended       *ExtendedHeader
	Frames         map[FrameType][]Frame
}

// NewTag returns an empty ID3v2.4 tag ready for frames to be added to it.
func NewTag() *Tag {
	return &Tag{Version: VersionV2r4, Frames: make(map[FrameType][]Frame)}
}

// AddFrame appends frame to the tag under its own identifier.
func (t *Tag) AddFrame(f Frame) {
	if t.Frames == nil {
		t.Frames = make(map[FrameType][]Frame)
	}
	t.Frames[f.ID()] = append(t.Frames[f.ID()], f)
}

// HasFrame reports whether at least one frame with the given identifier is present.
func (t *Tag) HasFrame(id FrameType) bool {
	return len(t.Frames[id]) > 0
}

// FramesByID returns every frame stored under id, in arrival order.
func (t *Tag) FramesByID(id FrameType) []Frame {
	return t.Frames[id]
}

// FramesByKind returns every frame whose canonical kind matches kind,
// regardless of which version's identifier it arrived under.
func (t *Tag) FramesByKind(kind CanonicalFrameKind) []Frame {
	var out []Frame
	for _, frames := range t.Frames {
		for _, f := range frames {
			if f.Kind() == kind {
				out = append(out, f)
			}
		}
	}
	return out
}

// RemoveFrames deletes every frame stored under id.
func (t *Tag) RemoveFrames(id FrameType) {
	delete(t.Frames, id)
}

func (t *Tag) getText(id FrameType) string {
	frames := t.Frames[id]
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(TextInformationFrame); ok && len(tf.Text) > 0 {
		return tf.Text[0]
	}
	return frames[0].Value()
}

// Title returns TIT2's value, or "" if absent.
func (t *Tag) Title() string { return t.getText("TIT2") }

// Artist returns TPE1's first value, or "" if absent.
func (t *Tag) Artist() string { return t.getText("TPE1") }

// Album returns TALB's value, or "" if absent.
func (t *Tag) Album() string { return t.getText("TALB") }

// AlbumArtist returns TPE2's value, or "" if absent.
func (t *Tag) AlbumArtist() string { return t.getText("TPE2") }

// Genre returns TCON's raw value. Use the genre package to resolve an
// ID3v1-style "(NN)" reference against the standard genre table.
func (t *Tag) Genre() string { return t.getText("TCON") }

// TrackNumber returns TRCK's raw value, which may be "N" or "N/total".
func (t *Tag) TrackNumber() string { return t.getText("TRCK") }

// Comment returns the first COMM frame's text, or "" if absent.
func (t *Tag) Comment() string {
	frames := t.Frames["COMM"]
	if len(frames) == 0 {
		return ""
	}
	return frames[0].Value()
}

// Picture returns the first APIC frame, or nil if absent.
func (t *Tag) Picture() *PictureFrame {
	frames := t.Frames["APIC"]
	if len(frames) == 0 {
		return nil
	}
	if pf, ok := frames[0].(PictureFrame); ok {
		return &pf
	}
	return nil
}
