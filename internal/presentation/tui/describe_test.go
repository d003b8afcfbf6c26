package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	w, err := workflow.Build(domain.Config{Topic: "Go", IncludeImage: true})
	require.NoError(t, err)

	md := Describe(w)
	assert.True(t, strings.HasPrefix(md, "# Twitter Automation Workflow\n"))
	assert.Contains(t, md, "4 nodes, 3 connections.")
	assert.Contains(t, md, "| 1 | Schedule Trigger | `n8n-nodes-base.scheduleTrigger` | - | 250, 300 |")
	assert.Contains(t, md, "- **Generate Tweet** → Generate AI Image")
	assert.Contains(t, md, "- **Post Tweet with Image** reads `imageUrl` from Generate AI Image")
	assert.Contains(t, md, "## Entry points\n\n- Schedule Trigger\n")
	assert.NotContains(t, md, "sets `", "built documents hold typed references")
}

func TestDescribe_EntryPointsAndDecodedReferences(t *testing.T) {
	w, err := workflow.Build(domain.Config{Topic: "Go", EnableEngagement: true})
	require.NoError(t, err)
	data, err := json.Marshal(w)
	require.NoError(t, err)
	var decoded domain.Workflow
	require.NoError(t, json.Unmarshal(data, &decoded))

	md := Describe(decoded)
	assert.Contains(t, md, "- Schedule Trigger\n- Search Relevant Tweets\n", "the engagement branch is a second entry point")
	assert.Contains(t, md, "- **Like Tweet** sets `tweetId` to `={{$json.id}}`")
	assert.Contains(t, md, "- **Post Tweet** sets `text` to `={{$json.tweet}}`")
}

func TestDescribe_Empty(t *testing.T) {
	md := Describe(domain.NewWorkflow("Empty"))
	assert.Contains(t, md, "0 nodes, 0 connections.")
	assert.Contains(t, md, "_none_")
	assert.NotContains(t, md, "Data flow")
}

func TestRenderer_Plain(t *testing.T) {
	render, err := NewRenderer(false)
	require.NoError(t, err)

	out, err := render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Equal(t, len(bannerLines)+2, strings.Count(buf.String(), "\n"))
}
