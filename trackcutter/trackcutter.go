// Package trackcutter splits a single audio file into per-track files
// according to the track/index layout described by a cuesheet.CueSheet.
//
// It mirrors cuelib-tools' TrackCutter: it never decodes or re-encodes
// audio, and it never parses tags itself. It is handed a byte-addressable
// audio source and a byte-rate conversion factor, computes a [start, end)
// byte range per track from the cue sheet's Index positions, and copies
// each range to the io.Writer its TrackCutterConfiguration hands back.
package trackcutter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ripkit/id3/cuesheet"
)

// PregapHandling controls what happens to the audio between a track's
// Index 0 (pregap start) and Index 1 (track start), mirroring
// TrackCutterConfiguration.PregapHandling in cuelib-tools.
type PregapHandling int

const (
	// PregapDiscard drops the pregap entirely; only audio from Index 1
	// onward is cut.
	PregapDiscard PregapHandling = iota
	// PregapPrepend includes the pregap as a prefix of the following
	// track's file, if it is at least PregapFrameLengthThreshold CD
	// frames long.
	PregapPrepend
	// PregapSeparate cuts the pregap as its own file (if long enough)
	// in addition to the track itself.
	PregapSeparate
)

// TrackCutterConfiguration mirrors cuelib-tools' TrackCutterConfiguration:
// it controls pregap handling and how output destinations are named, but
// (unlike the Java original) never shells out itself — running a
// post-processing command is left to the caller (see
// PostProcessCommandTemplate).
type TrackCutterConfiguration struct {
	// BytesPerCueFrame converts a cuesheet.Position's CD-frame offset
	// (75 frames/sec) into a byte offset in the audio source. For raw
	// 16-bit stereo 44.1kHz PCM this is 44100*2*2/75 = 2352.
	BytesPerCueFrame int64

	PregapHandling             PregapHandling
	PregapFrameLengthThreshold int64

	// Output returns the writer a cut track's bytes should be copied
	// to, and is told whether this chunk is the track's pregap.
	Output func(track cuesheet.TrackData, isPregap bool) (io.Writer, error)

	// CutFileNameTemplate and PostProcessCommandTemplate are
	// placeholder templates in the style of
	// TrackCutterConfiguration.cutFileNameTemplate: "<artist>", "<album>",
	// "<track>" and "<title>" are replaced with values from the track
	// and cue sheet. Callers that build file names from Output directly
	// don't need these; ExpandTemplate is exposed for callers that do.
	CutFileNameTemplate      string
	PostProcessCommandTemplate string
}

// ExpandTemplate replaces the human-readable placeholders
// TrackCutterConfiguration uses ("<artist>", "<album>", "<track>",
// "<title>") with values drawn from sheet and track, mirroring
// TrackCutterConfiguration.getExpandedFileName.
func ExpandTemplate(template string, sheet *cuesheet.CueSheet, track cuesheet.TrackData) string {
	title := track.Title
	performer := track.Performer
	if performer == "" {
		performer = sheet.Performer
	}
	replacer := strings.NewReplacer(
		"<artist>", performer,
		"<album>", sheet.Title,
		"<title>", title,
		"<track>", fmt.Sprintf("%02d", track.Number),
	)
	return replacer.Replace(template)
}

// CutTrack describes one track (or pregap) written by Cut.
type CutTrack struct {
	Track       cuesheet.TrackData
	IsPregap    bool
	StartOffset int64
	EndOffset   int64 // exclusive; 0 means "end of source"
}

// ErrNoOutputFunc is returned when cfg.Output is nil.
var ErrNoOutputFunc = errors.New("trackcutter: configuration has no Output func")

// Cut splits every FileData's tracks in sheet into separate writers,
// computed from the cue sheet's Index positions converted through
// cfg.BytesPerCueFrame. Each FileData is addressed independently via the
// audio ReaderAt (callers with cue sheets spanning multiple physical
// files should call Cut once per FileData with the matching source).
//
// It mirrors TrackCutter.getProcessActionList / addProcessActions: the
// action list is built per FileData by pairing each track's start index
// with the next track's start index (or end-of-data for the last track),
// then resolved against PregapHandling.
func Cut(ctx context.Context, sheet *cuesheet.CueSheet, audio io.ReaderAt, audioLen int64, cfg TrackCutterConfiguration) ([]CutTrack, error) {
	if cfg.Output == nil {
		return nil, ErrNoOutputFunc
	}

	var cut []CutTrack
	for _, fd := range sheet.FileData {
		actions := processActions(fd, cfg)
		for _, action := range actions {
			if err := ctx.Err(); err != nil {
				return cut, err
			}
			end := action.EndOffset
			if end == 0 {
				end = audioLen
			}
			w, err := cfg.Output(action.Track, action.IsPregap)
			if err != nil {
				return cut, fmt.Errorf("trackcutter: track %d: %w", action.Track.Number, err)
			}
			if err := copyRange(w, audio, action.StartOffset, end); err != nil {
				return cut, fmt.Errorf("trackcutter: track %d: %w", action.Track.Number, err)
			}
			cut = append(cut, action)
		}
	}
	return cut, nil
}

// copyRange copies audio[start:end) to w using a single bounded
// io.SectionReader, mirroring AudioInputStream.skip + bounded read in
// TrackCutter.performProcessAction without any audio-format awareness.
func copyRange(w io.Writer, audio io.ReaderAt, start, end int64) error {
	if end <= start {
		return nil
	}
	section := io.NewSectionReader(audio, start, end-start)
	_, err := io.Copy(w, section)
	return err
}

// processActions mirrors TrackCutter.getProcessActionList +
// addProcessActions for a single FileData: it walks the tracks in order,
// pairing each with the next track's starting position (index 0 if
// present, otherwise index 1) to bound its range, then expands that
// pairing into one or two CutTrack actions depending on PregapHandling.
func processActions(fd cuesheet.FileData, cfg TrackCutterConfiguration) []CutTrack {
	var actions []CutTrack
	var previous *cuesheet.TrackData

	addActions := func(track cuesheet.TrackData, nextStart *cuesheet.Position) {
		idx0 := track.Index(0)
		idx1 := track.Index(1)
		if idx1 == nil {
			// No usable start index at all; nothing to cut.
			return
		}
		var end int64
		if nextStart != nil {
			end = int64(nextStart.TotalFrames()) * cfg.BytesPerCueFrame
		}

		if idx0 == nil {
			actions = append(actions, CutTrack{
				Track:       track,
				StartOffset: int64(idx1.Position.TotalFrames()) * cfg.BytesPerCueFrame,
				EndOffset:   end,
			})
			return
		}

		pregapFrames := int64(idx1.Position.TotalFrames() - idx0.Position.TotalFrames())
		longEnough := pregapFrames >= cfg.PregapFrameLengthThreshold

		switch cfg.PregapHandling {
		case PregapDiscard:
			actions = append(actions, CutTrack{
				Track:       track,
				StartOffset: int64(idx1.Position.TotalFrames()) * cfg.BytesPerCueFrame,
				EndOffset:   end,
			})
		case PregapPrepend:
			if longEnough {
				actions = append(actions, CutTrack{
					Track:       track,
					StartOffset: int64(idx0.Position.TotalFrames()) * cfg.BytesPerCueFrame,
					EndOffset:   end,
				})
			} else {
				actions = append(actions, CutTrack{
					Track:       track,
					StartOffset: int64(idx1.Position.TotalFrames()) * cfg.BytesPerCueFrame,
					EndOffset:   end,
				})
			}
		case PregapSeparate:
			if longEnough {
				actions = append(actions, CutTrack{
					Track:       track,
					IsPregap:    true,
					StartOffset: int64(idx0.Position.TotalFrames()) * cfg.BytesPerCueFrame,
					EndOffset:   int64(idx1.Position.TotalFrames()) * cfg.BytesPerCueFrame,
				})
			}
			actions = append(actions, CutTrack{
				Track:       track,
				StartOffset: int64(idx1.Position.TotalFrames()) * cfg.BytesPerCueFrame,
				EndOffset:   end,
			})
		}
	}

	for i := range fd.TrackData {
		current := fd.TrackData[i]
		if previous != nil {
			var nextStart cuesheet.Position
			if idx0 := current.Index(0); idx0 != nil {
				nextStart = idx0.Position
			} else if idx1 := current.Index(1); idx1 != nil {
				nextStart = idx1.Position
			}
			addActions(*previous, &nextStart)
		}
		previous = &fd.TrackData[i]
	}
	if previous != nil {
		addActions(*previous, nil)
	}
	return actions
}
