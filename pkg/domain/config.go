package domain

// Tone selects the writing style of generated content.
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneInspirational Tone = "inspirational"
	ToneEducational   Tone = "educational"
)

// Frequency selects how often the pipeline is triggered.
type Frequency string

const (
	FrequencyHourly     Frequency = "hourly"
	FrequencyDaily      Frequency = "daily"
	FrequencyTwiceDaily Frequency = "twice-daily"
	FrequencyWeekly     Frequency = "weekly"
)

// Config is the flat, immutable input of the workflow builder.
// Unrecognized Tone or Frequency values are accepted; the builder falls back
// to the nearest defined branch.
type Config struct {
	Topic             string    `json:"topic" yaml:"topic" mapstructure:"topic"`
	Niche             string    `json:"niche" yaml:"niche" mapstructure:"niche"`
	Tone              Tone      `json:"tone" yaml:"tone" mapstructure:"tone"`
	ScheduleFrequency Frequency `json:"scheduleFrequency" yaml:"scheduleFrequency" mapstructure:"scheduleFrequency"`

	IncludeImage     bool `json:"includeImage" yaml:"includeImage" mapstructure:"includeImage"`
	EnableEngagement bool `json:"enableEngagement" yaml:"enableEngagement" mapstructure:"enableEngagement"`
	EnableDMs        bool `json:"enableDMs" yaml:"enableDMs" mapstructure:"enableDMs"`

	// TargetAccounts is a comma-separated list of usernames (optional).
	TargetAccounts string `json:"targetAccounts,omitempty" yaml:"targetAccounts,omitempty" mapstructure:"targetAccounts"`
	// DMMessage is the template personalized per account (optional).
	DMMessage string `json:"dmMessage,omitempty" yaml:"dmMessage,omitempty" mapstructure:"dmMessage"`
}
