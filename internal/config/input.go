package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// hclInput mirrors the configuration record for HCL files. Every attribute is
// optional so absent fields behave like they do in JSON and YAML input.
type hclInput struct {
	Topic             *string `hcl:"topic,optional"`
	Niche             *string `hcl:"niche,optional"`
	Tone              *string `hcl:"tone,optional"`
	ScheduleFrequency *string `hcl:"schedule_frequency,optional"`
	IncludeImage      *bool   `hcl:"include_image,optional"`
	EnableEngagement  *bool   `hcl:"enable_engagement,optional"`
	EnableDMs         *bool   `hcl:"enable_dms,optional"`
	TargetAccounts    *string `hcl:"target_accounts,optional"`
	DMMessage         *string `hcl:"dm_message,optional"`
}

func (h hclInput) toMap() map[string]any {
	raw := make(map[string]any)
	for key, v := range map[string]*string{
		"topic":             h.Topic,
		"niche":             h.Niche,
		"tone":              h.Tone,
		"scheduleFrequency": h.ScheduleFrequency,
		"targetAccounts":    h.TargetAccounts,
		"dmMessage":         h.DMMessage,
	} {
		if v != nil {
			raw[key] = *v
		}
	}
	for key, v := range map[string]*bool{
		"includeImage":     h.IncludeImage,
		"enableEngagement": h.EnableEngagement,
		"enableDMs":        h.EnableDMs,
	} {
		if v != nil {
			raw[key] = *v
		}
	}
	return raw
}

// LoadInput reads a workflow configuration file into a raw map.
// The format follows the extension: .json, .yaml/.yml or .hcl.
// The map is meant for workflow.DecodeConfig, which validates field types.
func LoadInput(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseInput(filepath.Base(path), data)
}

// ParseInput decodes data according to the extension of filename.
func ParseInput(filename string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	case ".hcl":
		var in hclInput
		if err := hclsimple.Decode(filename, data, nil, &in); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		raw = in.toMap()
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .json, .yaml, .yml or .hcl)", ext)
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	return raw, nil
}
