package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tweetflow"
	"github.com/aretw0/tweetflow/internal/validator"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <workflow.json>",
	Short: "Check a workflow document for consistency",
	Long: `Reads a workflow document and reports duplicate names, dangling connections, cycles,
out-of-sequence ids and references to nodes that are not upstream.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runValidate(args[0]); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Workflow is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := tweetflow.Decode(f)
	if err != nil {
		return err
	}
	if _, ok := workflow.PostingNode(w); !ok {
		return fmt.Errorf("no unique posting node reachable from the trigger")
	}
	if _, ok := validator.Order(w); !ok {
		return fmt.Errorf("no execution order")
	}
	return nil
}
