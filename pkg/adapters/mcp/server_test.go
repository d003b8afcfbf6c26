package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/tweetflow/internal/logging"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(opts ...workflow.Option) *Server {
	return NewServer("test", logging.NewNop(), opts...)
}

func TestHandleBuild(t *testing.T) {
	s := newTestServer()
	resp, err := s.handleBuild(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"topic":        "Go",
		"niche":        "dev",
		"includeImage": true,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Nodes)
	assert.Equal(t, domain.DefaultWorkflowName, resp.Workflow.Name)
	_, ok := resp.Workflow.Node(workflow.NodePostTweetWithImage)
	assert.True(t, ok)
}

func TestHandleBuild_InvalidArguments(t *testing.T) {
	s := newTestServer()
	_, err := s.handleBuild(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"topic":     "Go",
		"enableDMs": "yes",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestHandleBuild_Options(t *testing.T) {
	s := newTestServer(workflow.WithName("From MCP"))
	resp, err := s.handleBuild(context.Background(), mcp.CallToolRequest{}, map[string]any{"topic": "Go"})
	require.NoError(t, err)
	assert.Equal(t, "From MCP", resp.Workflow.Name)
}

func TestHandleSimulate(t *testing.T) {
	s := newTestServer()
	report, err := s.handleSimulate(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"topic":          "Go",
		"enableDMs":      true,
		"targetAccounts": "alice,bob,carol",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Results.DMsSent)
	assert.Equal(t, "Workflow executed successfully! Tweet posted. 3 DMs sent.", report.Message)
}

func TestConfigSchemaDocument(t *testing.T) {
	doc := configSchemaDocument()
	assert.Equal(t, "string", doc["topic"])
	assert.Equal(t, "bool", doc["includeImage"])
	assert.Len(t, doc, 9)
}

func TestToolsAreListed(t *testing.T) {
	s := newTestServer()
	msg := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(
		`{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`))

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &resp))

	var names []string
	for _, tool := range resp.Result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"build_workflow", "workflow_mermaid", "simulate_workflow"}, names)
}
