package workflow_test

import (
	"testing"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/schema"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_Valid(t *testing.T) {
	cfg, err := workflow.DecodeJSON([]byte(`{
		"topic": "AI",
		"niche": "tech",
		"tone": "casual",
		"scheduleFrequency": "hourly",
		"includeImage": true,
		"enableEngagement": false,
		"enableDMs": true,
		"targetAccounts": "alice, bob",
		"dmMessage": "hello",
		"unknownField": 42
	}`))
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		Topic:             "AI",
		Niche:             "tech",
		Tone:              domain.ToneCasual,
		ScheduleFrequency: domain.FrequencyHourly,
		IncludeImage:      true,
		EnableDMs:         true,
		TargetAccounts:    "alice, bob",
		DMMessage:         "hello",
	}, cfg)
}

func TestDecodeJSON_OptionalFields(t *testing.T) {
	cfg, err := workflow.DecodeJSON([]byte(`{"topic": "AI", "niche": "tech", "targetAccounts": null}`))
	require.NoError(t, err)
	assert.Equal(t, "AI", cfg.Topic)
	assert.Empty(t, cfg.TargetAccounts)
	assert.False(t, cfg.EnableDMs)
}

func TestDecodeJSON_WrongTypes(t *testing.T) {
	_, err := workflow.DecodeJSON([]byte(`{"topic": 7, "includeImage": "yes", "enableDMs": true}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	errs := schema.ValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "includeImage")
	assert.Contains(t, errs[1].Error(), "topic")
}

func TestDecodeJSON_NotAnObject(t *testing.T) {
	_, err := workflow.DecodeJSON([]byte(`["topic"]`))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = workflow.DecodeJSON([]byte(`{`))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestDecodeConfig_UnknownEnumValuesAccepted(t *testing.T) {
	cfg, err := workflow.DecodeConfig(map[string]any{"tone": "sarcastic", "scheduleFrequency": "monthly"})
	require.NoError(t, err)
	assert.Equal(t, domain.Tone("sarcastic"), cfg.Tone)

	_, err = workflow.Build(cfg)
	assert.NoError(t, err)
}
