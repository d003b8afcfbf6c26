package main

import (
	"log"
	"os"

	"github.com/aretw0/tweetflow"
	"github.com/aretw0/tweetflow/pkg/adapters/mcp"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts tweetflow as an MCP Server over Standard Input/Output.
This allows AI agents to build, render and simulate workflows as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Logs must not corrupt JSON-RPC on Stdout; logging.New writes to Stderr.
		_, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		log.SetOutput(os.Stderr)

		var opts []workflow.Option
		if exact, _ := cmd.Flags().GetBool("exact-schedule"); exact {
			opts = append(opts, workflow.WithExactSchedule())
		}
		if skip, _ := cmd.Flags().GetBool("skip-empty-accounts"); skip {
			opts = append(opts, workflow.WithoutEmptyAccounts())
		}

		srv := mcp.NewServer(tweetflow.Version, logger, opts...)
		logger.Info("Starting tweetflow MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "err", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("exact-schedule", false, "Give twice-daily and weekly their own schedule rules")
	mcpCmd.Flags().Bool("skip-empty-accounts", false, "Ignore blank entries of the account list")
}
