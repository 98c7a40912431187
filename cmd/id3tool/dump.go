package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ripkit/id3"
)

var dumpCommand = &cobra.Command{
	Use:   "dump <file>",
	Short: "Parse and print every frame of every tag found in a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	tags, parseErr := id3.Parse(f)
	for _, tag := range tags {
		fmt.Printf("=== %s ===\n", tag.Version)
		for id, frames := range tag.Frames {
			for _, frame := range frames {
				fmt.Printf("%-6s %s\n", id, frame.Value())
			}
		}
	}
	if parseErr != nil && parseErr != id3.ErrAbsentTag {
		return parseErr
	}
	return nil
}
