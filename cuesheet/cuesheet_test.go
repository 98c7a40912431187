package cuesheet

import (
	"strings"
	"testing"
)

const sample = `REM GENRE Rock
REM DATE 1999
PERFORMER "The Band"
TITLE "Greatest Hits"
FILE "album.wav" WAVE
  TRACK 01 AUDIO
    TITLE "First Song"
    PERFORMER "The Band"
    INDEX 00 00:00:00
    INDEX 01 00:02:00
  TRACK 02 AUDIO
    TITLE "Second Song"
    INDEX 01 03:45:10
`

func TestParseBasicSheet(t *testing.T) {
	sheet, warnings, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if sheet.Title != "Greatest Hits" || sheet.Performer != "The Band" {
		t.Fatalf("got title=%q performer=%q", sheet.Title, sheet.Performer)
	}
	if sheet.Genre != "Rock" || sheet.Year != 1999 {
		t.Fatalf("got genre=%q year=%d", sheet.Genre, sheet.Year)
	}
	if len(sheet.FileData) != 1 {
		t.Fatalf("expected 1 FileData, got %d", len(sheet.FileData))
	}
	tracks := sheet.AllTrackData()
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].Title != "First Song" || tracks[1].Title != "Second Song" {
		t.Fatalf("got track titles %q, %q", tracks[0].Title, tracks[1].Title)
	}
	pregap := tracks[0].Index(0)
	if pregap == nil || pregap.Position.TotalFrames() != 0 {
		t.Fatalf("expected pregap index at 0 frames, got %+v", pregap)
	}
	start := tracks[0].Index(1)
	if start == nil || start.Position.TotalFrames() != 150 {
		t.Fatalf("expected index 1 at 150 frames, got %+v", start)
	}
}

func TestParseWarnsOnTrackOutsideFile(t *testing.T) {
	_, warnings, err := Parse(strings.NewReader("TRACK 01 AUDIO\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
}

func TestParseWarnsOnMalformedPosition(t *testing.T) {
	input := "FILE \"a.wav\" WAVE\n  TRACK 01 AUDIO\n    INDEX 01 not-a-position\n"
	_, warnings, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
}

func TestPositionTotalFrames(t *testing.T) {
	p := Position{Minutes: 1, Seconds: 2, Frames: 3}
	if got := p.TotalFrames(); got != (62 * FramesPerSecond) + 3 {
		t.Fatalf("TotalFrames() = %d", got)
	}
}
