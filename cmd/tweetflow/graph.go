package main

import (
	"fmt"

	"github.com/aretw0/tweetflow"
	"github.com/aretw0/tweetflow/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the workflow visualization",
	Long:  `Builds the workflow and outputs a Mermaid diagram (graph LR) of its nodes and connections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, opts, err := configFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		w, err := tweetflow.Build(cfg, opts...)
		if err != nil {
			return err
		}

		highlight, _ := cmd.Flags().GetStringSlice("highlight")
		var overlay *graph.GraphOverlay
		if len(highlight) > 0 {
			overlay = &graph.GraphOverlay{Highlight: highlight}
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(w, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addConfigFlags(graphCmd)
	graphCmd.Flags().StringSlice("highlight", nil, "Node names to highlight")
}
