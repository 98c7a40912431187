// Package cuesheet parses cue sheets, the plain-text format that describes
// how one or more audio files making up an album are divided into tracks.
//
// The data model mirrors cuelib's CueSheet/FileData/TrackData/Index
// hierarchy: a CueSheet holds disc-level metadata and a list of FileData,
// each FileData describes one FILE block and holds a list of TrackData,
// and each TrackData holds the Index points that mark where a track (and
// optionally its pregap) begins within that file.
package cuesheet

import "fmt"

// DataType is the FILE block's declared audio/data type.
type DataType string

// Recognised FILE data types. The list is not exhaustive; unrecognised
// values are kept verbatim rather than rejected.
const (
	DataTypeAudio    DataType = "AUDIO"
	DataTypeBinary   DataType = "BINARY"
	DataTypeMotorola DataType = "MOTOROLA"
	DataTypeAIFF     DataType = "AIFF"
	DataTypeWAVE     DataType = "WAVE"
	DataTypeMP3      DataType = "MP3"
)

// TrackDataType is a TRACK block's declared track type, e.g. "AUDIO" or
// one of the MODE1/MODE2 CD-ROM sector formats.
type TrackDataType string

// Position is a cue sheet timestamp of the form MM:SS:FF, where FF counts
// CD frames (75 per second).
type Position struct {
	Minutes int
	Seconds int
	Frames  int
}

// FramesPerSecond is the number of CD frames in one second of audio, the
// unit Index and Position values are expressed in.
const FramesPerSecond = 75

// TotalFrames returns the position's offset from 00:00:00, in CD frames.
func (p Position) TotalFrames() int {
	return (p.Minutes*60+p.Seconds)*FramesPerSecond + p.Frames
}

func (p Position) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", p.Minutes, p.Seconds, p.Frames)
}

// Index is one INDEX (or PREGAP, recorded as index 0) point within a track.
type Index struct {
	Number   int
	Position Position
}

// TrackData describes one TRACK block: a single logical track within a
// FileData, identified by its track number and holding the index points
// that mark its pregap (index 0, if present) and its start (index 1).
type TrackData struct {
	Number     int
	DataType   TrackDataType
	Title      string
	Performer  string
	Songwriter string
	ISRC       string
	Flags      []string
	Indices    []Index
}

// Index returns the TRACK's index with the given number, or nil if it has
// none. Mirrors TrackData.getIndex(int) in cuelib.
func (t *TrackData) Index(number int) *Index {
	for i := range t.Indices {
		if t.Indices[i].Number == number {
			return &t.Indices[i]
		}
	}
	return nil
}

// FileData describes one FILE block: the name and type of an audio file,
// and the tracks cut from it.
type FileData struct {
	File      string
	FileType  DataType
	TrackData []TrackData
}

// AllIndices returns every Index across every TrackData in this FileData,
// in file order.
func (f *FileData) AllIndices() []Index {
	var all []Index
	for i := range f.TrackData {
		all = append(all, f.TrackData[i].Indices...)
	}
	return all
}

// CueSheet is a fully parsed cue sheet: disc-level metadata plus the FILE
// blocks that make it up.
type CueSheet struct {
	Performer  string
	Songwriter string
	Title      string
	Catalog    string
	CDTextFile string
	Comment    string
	Discid     string
	Genre      string
	Year       int
	TotalDiscs int
	DiscNumber int

	FileData []FileData
}

// AllTrackData returns every TrackData across every FileData, in file
// order. Mirrors CueSheet.getAllTrackData in cuelib.
func (c *CueSheet) AllTrackData() []TrackData {
	var all []TrackData
	for i := range c.FileData {
		all = append(all, c.FileData[i].TrackData...)
	}
	return all
}

// Severity distinguishes a parse Warning from a fatal parse error; cue
// sheets accumulate both kinds of message rather than abort on the first
// malformed line, mirroring cuelib's Message/MessageImplementation split
// between Warning and Error.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Warning is one parse message tied to the line of input that produced it.
type Warning struct {
	Severity   Severity
	LineNumber int
	Line       string
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%03d): %s: %q", w.Severity, w.LineNumber, w.Message, w.Line)
}
