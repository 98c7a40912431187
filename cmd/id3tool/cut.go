package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ripkit/id3/config"
	"github.com/ripkit/id3/cuesheet"
	"github.com/ripkit/id3/trackcutter"
)

var (
	cutConfigPath    string
	cutBytesPerFrame int64
)

var cutCommand = &cobra.Command{
	Use:   "cut <cuefile> <audiofile>",
	Short: "Cut an audio file into per-track files according to a cue sheet",
	Args:  cobra.ExactArgs(2),
	RunE:  runCut,
}

func init() {
	cutCommand.Flags().StringVar(&cutConfigPath, "config", "", "path to an id3tool properties file")
	cutCommand.Flags().Int64Var(&cutBytesPerFrame, "bytes-per-frame", 2352,"audio bytes per CD frame (default: 16-bit stereo 44.1kHz)")
}

func runCut(cmd *cobra.Command, args []string) error {
	cueFile, audioFile := args[0], args[1]

	cfg := config.Config{OutputDirectory: ".", CutFileNameTemplate: "<artist>_<album>_<track>_<title>.wav"}
	if cutConfigPath != "" {
		loaded, err := config.Load(cutConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = *loaded
	}

	cueReader, err := os.Open(cueFile)
	if err != nil {
		return err
	}
	defer cueReader.Close()

	sheet, warnings, err := cuesheet.Parse(cueReader)
	if err != nil {
		return fmt.Errorf("parsing cue sheet: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}

	audio, err := os.Open(audioFile)
	if err != nil {
		return err
	}
	defer audio.Close()

	audioInfo, err := audio.Stat()
	if err != nil {
		return err
	}

	var openedFiles []*os.File
	defer func() {
		for _, f := range openedFiles {
			f.Close()
		}
	}()

	tcConfig := trackcutter.TrackCutterConfiguration{
		BytesPerCueFrame: cutBytesPerFrame,
		PregapHandling:   trackcutter.PregapDiscard,
		Output: func(track cuesheet.TrackData, isPregap bool) (io.Writer, error) {
			name := trackcutter.ExpandTemplate(cfg.CutFileNameTemplate, sheet, track)
			if isPregap {
				name = "pregap_" + name
			}
			if err := os.MkdirAll(cfg.OutputDirectory, 0o755); err != nil {
				return nil, err
			}
			out, err := os.Create(filepath.Join(cfg.OutputDirectory, name))
			if err != nil {
				return nil, err
			}
			openedFiles = append(openedFiles, out)
			return out, nil
		},
	}

	cut, err := trackcutter.Cut(context.Background(), sheet, audio, audioInfo.Size(), tcConfig)
	if err != nil {
		return fmt.Errorf("cutting tracks: %w", err)
	}

	fmt.Printf("cut %d track(s)\n", len(cut))
	return nil
}
