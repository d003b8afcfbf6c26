package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tweetflow"
	"github.com/aretw0/tweetflow/internal/presentation/graph"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the workflow document",
	Long: `Builds the n8n workflow for a configuration and writes it to stdout or a file.

The configuration comes from --input and/or the individual flags:

  tweetflow build --topic "AI Trends" --niche "Tech" --image --engagement
  tweetflow build -i campaign.hcl --format yaml -o workflow.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, opts, err := configFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		w, err := tweetflow.Build(cfg, opts...)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		if output == "" {
			return writeWorkflow(cmd.OutOrStdout(), w, format)
		}
		return writeWorkflowFile(output, w, format)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addConfigFlags(buildCmd)
	buildCmd.Flags().StringP("format", "f", "json", "Output format: json, yaml or mermaid")
	buildCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}

// writeWorkflowFile writes the document to path, reporting a failed close.
func writeWorkflowFile(path string, w domain.Workflow, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return writeWorkflow(f, w, format)
}

func writeWorkflow(out io.Writer, w domain.Workflow, format string) error {
	switch format {
	case "json":
		return tweetflow.Encode(out, w, true)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(w); err != nil {
			return fmt.Errorf("failed to encode workflow: %w", err)
		}
		return enc.Close()
	case "mermaid":
		_, err := io.WriteString(out, graph.GenerateMermaid(w, nil))
		return err
	default:
		return fmt.Errorf("unsupported format %q (want json, yaml or mermaid)", format)
	}
}
