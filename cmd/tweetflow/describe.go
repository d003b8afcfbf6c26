package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tweetflow"
	"github.com/aretw0/tweetflow/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the workflow in the terminal",
	Long:  `Builds the workflow and prints its nodes, connections and data flow as rendered markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, opts, err := configFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		w, err := tweetflow.Build(cfg, opts...)
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetBool("raw")
		md := tui.Describe(w)
		if raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer(tui.IsTerminal(os.Stdout))
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addConfigFlags(describeCmd)
	describeCmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
}
