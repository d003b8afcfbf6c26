package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/tweetflow"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addConfigFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestConfigFromFlags_Defaults(t *testing.T) {
	cmd := newConfigCmd(t, "--topic", "AI Trends", "--niche", "Tech")

	cfg, opts, err := configFromFlags(cmd.Flags())
	require.NoError(t, err)
	assert.Empty(t, opts)
	assert.Equal(t, domain.Config{
		Topic:             "AI Trends",
		Niche:             "Tech",
		Tone:              domain.ToneProfessional,
		ScheduleFrequency: domain.FrequencyDaily,
	}, cfg)
}

func TestConfigFromFlags_InputFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
topic: Go
niche: Backend
tone: casual
scheduleFrequency: hourly
includeImage: true
`), 0o644))

	cmd := newConfigCmd(t, "-i", path, "--niche", "Cloud", "--dms", "--accounts", "alice,bob", "--name", "Campaign", "--exact-schedule")

	cfg, opts, err := configFromFlags(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, "Go", cfg.Topic)
	assert.Equal(t, "Cloud", cfg.Niche, "explicit flags override the file")
	assert.Equal(t, domain.ToneCasual, cfg.Tone, "flag defaults do not override the file")
	assert.Equal(t, domain.FrequencyHourly, cfg.ScheduleFrequency)
	assert.True(t, cfg.IncludeImage)
	assert.True(t, cfg.EnableDMs)
	assert.Equal(t, "alice,bob", cfg.TargetAccounts)
	assert.Len(t, opts, 2)

	w, err := workflow.Build(cfg, opts...)
	require.NoError(t, err)
	assert.Equal(t, "Campaign", w.Name)
}

func TestConfigFromFlags_BadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"includeImage": "yes"}`), 0o644))

	cmd := newConfigCmd(t, "-i", path)
	_, _, err := configFromFlags(cmd.Flags())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestWriteWorkflow(t *testing.T) {
	w, err := tweetflow.Build(domain.Config{Topic: "Go", Niche: "Backend", ScheduleFrequency: domain.FrequencyDaily})
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeWorkflow(&buf, w, "json"))
		decoded, err := tweetflow.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, w.Name, decoded.Name)
		assert.Len(t, decoded.Nodes, len(w.Nodes))
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeWorkflow(&buf, w, "yaml"))
		assert.Contains(t, buf.String(), "name: "+domain.DefaultWorkflowName)
		assert.Contains(t, buf.String(), "nodes:")
	})

	t.Run("mermaid", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeWorkflow(&buf, w, "mermaid"))
		assert.Contains(t, buf.String(), "graph LR")
	})

	t.Run("unknown", func(t *testing.T) {
		err := writeWorkflow(&bytes.Buffer{}, w, "xml")
		assert.ErrorContains(t, err, "unsupported format")
	})
}

func TestWriteWorkflowFile(t *testing.T) {
	w, err := tweetflow.Build(domain.Config{Topic: "Go"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "workflow.json")
	require.NoError(t, writeWorkflowFile(path, w, "json"))
	assert.NoError(t, runValidate(path))

	err = writeWorkflowFile(filepath.Join(t.TempDir(), "missing", "workflow.json"), w, "json")
	assert.ErrorContains(t, err, "failed to create output")
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	w, err := tweetflow.Build(domain.Config{Topic: "Go", Niche: "Backend", IncludeImage: true})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tweetflow.Encode(&buf, w, false))

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, buf.Bytes(), 0o644))
	assert.NoError(t, runValidate(valid))

	buf.Reset()
	require.NoError(t, tweetflow.Encode(&buf, domain.NewWorkflow("empty"), false))
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, buf.Bytes(), 0o644))
	assert.Error(t, runValidate(invalid))

	assert.Error(t, runValidate(filepath.Join(dir, "missing.json")))
}
