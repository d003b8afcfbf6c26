package main

import (
	"fmt"

	"github.com/aretw0/tweetflow"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tweetflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tweetflow version %s\n", tweetflow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
