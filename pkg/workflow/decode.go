package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/schema"
	"github.com/mitchellh/mapstructure"
)

// ConfigSchema lists the primitive type of every configuration field.
var ConfigSchema = schema.Schema{
	"topic":             schema.String(),
	"niche":             schema.String(),
	"tone":              schema.String(),
	"scheduleFrequency": schema.String(),
	"includeImage":      schema.Bool(),
	"enableEngagement":  schema.Bool(),
	"enableDMs":         schema.Bool(),
	"targetAccounts":    schema.String(),
	"dmMessage":         schema.String(),
}

// DecodeConfig validates the shape of raw and decodes it into a Config.
// Absent or null fields keep their zero value; a field present with the wrong
// primitive type fails with an error wrapping domain.ErrInvalidConfig and the
// schema.AggregateError that lists every offending field.
func DecodeConfig(raw map[string]any) (domain.Config, error) {
	if err := schema.ValidatePresent(ConfigSchema, raw); err != nil {
		return domain.Config{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	present := make(map[string]any, len(raw))
	for k, v := range raw {
		if v != nil {
			present[k] = v
		}
	}

	var cfg domain.Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &cfg,
		TagName: "mapstructure",
	})
	if err != nil {
		return domain.Config{}, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(present); err != nil {
		return domain.Config{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// DecodeJSON parses a JSON object and decodes it with DecodeConfig.
func DecodeJSON(data []byte) (domain.Config, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Config{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return DecodeConfig(raw)
}
