package trackcutter

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/ripkit/id3/cuesheet"
)

const twoTrackSheet = `FILE "album.wav" WAVE
  TRACK 01 AUDIO
    TITLE "First"
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    TITLE "Second"
    INDEX 00 00:02:00
    INDEX 01 00:02:10
`

func parseSheet(t *testing.T) *cuesheet.CueSheet {
	t.Helper()
	sheet, warnings, err := cuesheet.Parse(strings.NewReader(twoTrackSheet))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	return sheet
}

// byteSource is a fixed-size in-memory io.ReaderAt standing in for an
// audio file, filled with an ascending byte sequence so ranges are easy
// to assert on.
func byteSource(n int) *bytes.Reader {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 256)
	}
	return bytes.NewReader(b)
}

func TestCutDiscardsPregapByDefault(t *testing.T) {
	sheet := parseSheet(t)
	audio := byteSource(3000)

	outputs := map[int]*bytes.Buffer{}
	cfg := TrackCutterConfiguration{
		BytesPerCueFrame: 10,
		PregapHandling:   PregapDiscard,
		Output: func(track cuesheet.TrackData, isPregap bool) (io.Writer, error) {
			buf := &bytes.Buffer{}
			outputs[track.Number] = buf
			return buf, nil
		},
	}

	cut, err := Cut(context.Background(), sheet, audio, int64(audio.Len()), cfg)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if len(cut) != 2 {
		t.Fatalf("expected 2 cut tracks, got %d", len(cut))
	}

	// Track 1 runs from frame 0 to track 2's index 0 (pregap start) at
	// 00:02:00 = 150 frames, 150*10 = 1500 bytes; pregap discarded means
	// track 2 is cut from its index 1 at 00:02:10 = 160 frames, 1600 bytes,
	// to the end of the source (EndOffset 0).
	if cut[0].StartOffset != 0 || cut[0].EndOffset != 1500 {
		t.Fatalf("track 1 range = [%d,%d)", cut[0].StartOffset, cut[0].EndOffset)
	}
	if cut[1].StartOffset != 1600 || cut[1].EndOffset != 0 {
		t.Fatalf("track 2 range = [%d,%d)", cut[1].StartOffset, cut[1].EndOffset)
	}
	if outputs[1].Len() != 1500 || outputs[2].Len() != int(int64(audio.Len())-1600) {
		t.Fatalf("unexpected output sizes: %d, %d", outputs[1].Len(), outputs[2].Len())
	}
}

func TestCutSeparatesLongPregap(t *testing.T) {
	sheet := parseSheet(t)
	audio := byteSource(3000)

	var pregapCuts int
	cfg := TrackCutterConfiguration{
		BytesPerCueFrame:           10,
		PregapHandling:             PregapSeparate,
		PregapFrameLengthThreshold: 1,
		Output: func(track cuesheet.TrackData, isPregap bool) (io.Writer, error) {
			if isPregap {
				pregapCuts++
			}
			return &bytes.Buffer{}, nil
		},
	}

	cut, err := Cut(context.Background(), sheet, audio, int64(audio.Len()), cfg)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if pregapCuts != 1 {
		t.Fatalf("expected 1 pregap cut, got %d", pregapCuts)
	}
	if len(cut) != 3 {
		t.Fatalf("expected 3 cut actions (track1, pregap2, track2), got %d", len(cut))
	}
}

func TestExpandTemplate(t *testing.T) {
	sheet := parseSheet(t)
	track := sheet.AllTrackData()[0]
	sheet.Performer = "Band"
	sheet.Title = "Album"

	got := ExpandTemplate("<artist>_<album>_<track>_<title>.wav", sheet, track)
	if got != "Band_Album_01_First.wav" {
		t.Fatalf("ExpandTemplate = %q", got)
	}
}
