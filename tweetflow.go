package tweetflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/tweetflow/internal/validator"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/workflow"
)

// Version is the release of the tweetflow module.
const Version = "0.1.0"

// Build builds and validates the workflow for cfg.
func Build(cfg domain.Config, opts ...workflow.Option) (domain.Workflow, error) {
	return workflow.Build(cfg, opts...)
}

// BuildMap decodes a raw configuration map (as read from JSON, YAML or HCL)
// and builds the workflow.
func BuildMap(raw map[string]any, opts ...workflow.Option) (domain.Workflow, error) {
	cfg, err := workflow.DecodeConfig(raw)
	if err != nil {
		return domain.Workflow{}, err
	}
	return workflow.Build(cfg, opts...)
}

// Encode writes w as JSON. HTML characters are kept as-is so inline function
// code and DM templates stay readable.
func Encode(out io.Writer, w domain.Workflow, indent bool) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("failed to encode workflow: %w", err)
	}
	return nil
}

// Marshal builds the workflow for cfg and returns its indented JSON document.
func Marshal(cfg domain.Config, opts ...workflow.Option) ([]byte, error) {
	w, err := Build(cfg, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, w, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a workflow document and checks its integrity.
func Decode(r io.Reader) (domain.Workflow, error) {
	var w domain.Workflow
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return domain.Workflow{}, fmt.Errorf("failed to decode workflow: %w", err)
	}
	if err := validator.Check(w); err != nil {
		return domain.Workflow{}, err
	}
	return w, nil
}
