// Package main is the entry point for the vmap CLI.
//
// vmap plans video transcodes: it probes an input file, decides per
// stream whether to copy or re-encode, and prints the resulting FFmpeg
// argument list without running it.
package main

import (
	"os"

	"github.com/jspencer/vmap/cmd/vmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
