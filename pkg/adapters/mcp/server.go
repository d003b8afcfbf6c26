// Package mcp exposes the workflow builder to MCP clients.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/tweetflow/internal/presentation/graph"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/simulate"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ConfigSchemaURI addresses the resource describing the configuration fields.
const ConfigSchemaURI = "tweetflow://schema/config"

// BuildResponse is the structured result of build_workflow.
type BuildResponse struct {
	Workflow domain.Workflow `json:"workflow" jsonschema_description:"The n8n workflow document"`
	Nodes    int             `json:"nodes" jsonschema_description:"Number of nodes in the workflow"`
}

// Server exposes workflow tools over MCP.
type Server struct {
	mcpServer    *server.MCPServer
	simulator    *simulate.Simulator
	buildOptions []workflow.Option
	logger       *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(version string, logger *slog.Logger, opts ...workflow.Option) *Server {
	s := &Server{
		mcpServer:    server.NewMCPServer("tweetflow-mcp", version),
		simulator:    simulate.New(),
		buildOptions: opts,
		logger:       logger,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, e.g. to mount it on another transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// configOptions declares one tool argument per configuration field. The
// argument names are the configuration keys, so arguments decode as-is.
func configOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("topic", mcp.Required(), mcp.Description("Subject of the generated tweets")),
		mcp.WithString("niche", mcp.Description("Audience or industry of the account")),
		mcp.WithString("tone", mcp.Description("professional, casual, humorous, inspirational or educational")),
		mcp.WithString("scheduleFrequency", mcp.Description("hourly, daily, twice-daily or weekly")),
		mcp.WithBoolean("includeImage", mcp.Description("Attach an AI generated image to the tweet")),
		mcp.WithBoolean("enableEngagement", mcp.Description("Add the search, like, reply and retweet branch")),
		mcp.WithBoolean("enableDMs", mcp.Description("Add the direct message branch")),
		mcp.WithString("targetAccounts", mcp.Description("Comma-separated usernames for DMs")),
		mcp.WithString("dmMessage", mcp.Description("DM template personalized per account")),
	}
}

func (s *Server) registerTools() {
	// TOOL: build_workflow
	buildTool := mcp.NewTool("build_workflow", append([]mcp.ToolOption{
		mcp.WithDescription("Build the n8n Twitter automation workflow for a configuration."),
		mcp.WithOutputSchema[BuildResponse](),
	}, configOptions()...)...)
	s.mcpServer.AddTool(buildTool, mcp.NewStructuredToolHandler(s.handleBuild))

	// TOOL: workflow_mermaid
	mermaidTool := mcp.NewTool("workflow_mermaid", append([]mcp.ToolOption{
		mcp.WithDescription("Render the workflow for a configuration as a Mermaid flowchart."),
	}, configOptions()...)...)
	s.mcpServer.AddTool(mermaidTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := s.build(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(graph.GenerateMermaid(w, nil)), nil
	})

	// TOOL: simulate_workflow
	simulateTool := mcp.NewTool("simulate_workflow", append([]mcp.ToolOption{
		mcp.WithDescription("Dry-run the workflow for a configuration and report what it would do."),
		mcp.WithOutputSchema[simulate.Report](),
	}, configOptions()...)...)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))
}

func (s *Server) build(args map[string]any) (domain.Workflow, error) {
	cfg, err := workflow.DecodeConfig(args)
	if err != nil {
		return domain.Workflow{}, err
	}
	w, err := workflow.Build(cfg, s.buildOptions...)
	if err != nil {
		return domain.Workflow{}, fmt.Errorf("build failed: %w", err)
	}
	s.logger.Debug("workflow built", "nodes", len(w.Nodes))
	return w, nil
}

func (s *Server) handleBuild(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (BuildResponse, error) {
	w, err := s.build(args)
	if err != nil {
		return BuildResponse{}, err
	}
	return BuildResponse{Workflow: w, Nodes: len(w.Nodes)}, nil
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (simulate.Report, error) {
	w, err := s.build(args)
	if err != nil {
		return simulate.Report{}, err
	}
	cfg, _ := workflow.DecodeConfig(args)
	return s.simulator.Run(w, cfg)
}

// configSchemaDocument maps every configuration field to its primitive type.
func configSchemaDocument() map[string]string {
	fields := make(map[string]string, len(workflow.ConfigSchema))
	for _, name := range workflow.ConfigSchema.Fields() {
		fields[name] = workflow.ConfigSchema[name].Name()
	}
	return fields
}

func (s *Server) registerResources() {
	// EXPOSE: tweetflow://schema/config
	s.mcpServer.AddResource(mcp.NewResource(ConfigSchemaURI, "Workflow Configuration Fields",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(configSchemaDocument())
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ConfigSchemaURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
