package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ripkit/id3"
)

var probeCommand = &cobra.Command{
	Use:   "probe <file>",
	Short: "Report which ID3 tag versions are present in a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	versions, err := id3.ProbeVersions(f)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Println("no ID3 tag found")
		return nil
	}
	for _, v := range versions {
		fmt.Println(v)
	}
	return nil
}
