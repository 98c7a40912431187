// Command id3tool probes, dumps, and cuts ID3-tagged audio files from a
// cue sheet, exposing the id3/cuesheet/trackcutter packages as a single
// cobra CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCommand = &cobra.Command{
	Use:   "id3tool",
	Short: "Inspect and cut ID3-tagged audio files",
}

func main() {
	rootCommand.AddCommand(probeCommand)
	rootCommand.AddCommand(dumpCommand)
	rootCommand.AddCommand(cutCommand)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
