package main

import (
	"github.com/aretw0/tweetflow/internal/config"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// stringFlags and boolFlags map command-line flags to configuration keys.
var stringFlags = map[string]string{
	"topic":     "topic",
	"niche":     "niche",
	"tone":      "tone",
	"frequency": "scheduleFrequency",
	"accounts":  "targetAccounts",
	"dm":        "dmMessage",
}

var boolFlags = map[string]string{
	"image":      "includeImage",
	"engagement": "enableEngagement",
	"dms":        "enableDMs",
}

// addConfigFlags registers the workflow configuration flags on cmd.
func addConfigFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", "", "Configuration file (.json, .yaml, .yml or .hcl); flags override its fields")
	f.String("topic", "", "Subject of the generated tweets")
	f.String("niche", "", "Audience or industry of the account")
	f.String("tone", string(domain.ToneProfessional), "professional, casual, humorous, inspirational or educational")
	f.String("frequency", string(domain.FrequencyDaily), "hourly, daily, twice-daily or weekly")
	f.Bool("image", false, "Attach an AI generated image")
	f.Bool("engagement", false, "Add the engagement branch")
	f.Bool("dms", false, "Add the DM branch")
	f.String("accounts", "", "Comma-separated usernames for DMs")
	f.String("dm", "", "DM template personalized per account")

	f.String("name", "", "Workflow name (default \""+domain.DefaultWorkflowName+"\")")
	f.Bool("exact-schedule", false, "Give twice-daily and weekly their own schedule rules")
	f.Bool("skip-empty-accounts", false, "Ignore blank entries of the account list")
}

// configFromFlags assembles the configuration: the input file first, then
// every flag that has a default or was set explicitly.
func configFromFlags(f *pflag.FlagSet) (domain.Config, []workflow.Option, error) {
	raw := make(map[string]any)
	if path, _ := f.GetString("input"); path != "" {
		loaded, err := config.LoadInput(path)
		if err != nil {
			return domain.Config{}, nil, err
		}
		raw = loaded
	}

	for flag, key := range stringFlags {
		_, inFile := raw[key]
		if f.Changed(flag) || (!inFile && f.Lookup(flag).DefValue != "") {
			raw[key], _ = f.GetString(flag)
		}
	}
	for flag, key := range boolFlags {
		if f.Changed(flag) {
			raw[key], _ = f.GetBool(flag)
		}
	}

	cfg, err := workflow.DecodeConfig(raw)
	if err != nil {
		return domain.Config{}, nil, err
	}

	var opts []workflow.Option
	if name, _ := f.GetString("name"); name != "" {
		opts = append(opts, workflow.WithName(name))
	}
	if exact, _ := f.GetBool("exact-schedule"); exact {
		opts = append(opts, workflow.WithExactSchedule())
	}
	if skip, _ := f.GetBool("skip-empty-accounts"); skip {
		opts = append(opts, workflow.WithoutEmptyAccounts())
	}
	return cfg, opts, nil
}
