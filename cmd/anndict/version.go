package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqmeta/anndict/internal/dictionary"
)

// Version is the tool version. Overridable at link time:
//
//	go build -ldflags "-X main.Version=1.2.3" ./cmd/anndict
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the anndict version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("anndict %s (dictionary schema %s)\n", Version, dictionary.SchemaVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
