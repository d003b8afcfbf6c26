package simulate

import (
	"testing"
	"time"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixed = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixed }

func TestRun_BasePipeline(t *testing.T) {
	cfg := domain.Config{Topic: "Go", Niche: "dev", Tone: domain.ToneCasual, ScheduleFrequency: domain.FrequencyDaily}

	report, err := New(WithClock(clock)).Run(domain.Workflow{}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "Workflow executed successfully! Tweet posted.", report.Message)
	assert.True(t, report.Results.TweetGenerated)
	assert.True(t, report.Results.Posted)
	assert.False(t, report.Results.ImageGenerated)
	assert.Nil(t, report.Results.EngagementActions)
	assert.Zero(t, report.Results.DMsSent)
	assert.Equal(t, fixed, report.Results.Timestamp)
	assert.Equal(t, []string{workflow.NodeScheduleTrigger, workflow.NodeGenerateTweet, workflow.NodePostTweet}, report.Steps)
}

func TestRun_AllBranches(t *testing.T) {
	cfg := domain.Config{
		Topic:             "Go",
		Niche:             "dev",
		Tone:              domain.ToneHumorous,
		ScheduleFrequency: domain.FrequencyHourly,
		IncludeImage:      true,
		EnableEngagement:  true,
		EnableDMs:         true,
		TargetAccounts:    "alice, bob,carol",
		DMMessage:         "hi",
	}
	w, err := workflow.Build(cfg)
	require.NoError(t, err)

	report, err := New(WithClock(clock)).Run(w, cfg)
	require.NoError(t, err)

	assert.Equal(t, "Workflow executed successfully! Tweet with AI image posted. Engagement actions completed. 3 DMs sent.", report.Message)
	assert.Equal(t, &Engagement{Liked: 5, Commented: 3, Retweeted: 2}, report.Results.EngagementActions)
	assert.Equal(t, 3, report.Results.DMsSent)
	assert.Len(t, report.Steps, len(w.Nodes))
}

func TestRun_EmptyAccountEntries(t *testing.T) {
	cfg := domain.Config{Topic: "Go", EnableDMs: true, TargetAccounts: "alice,,bob,"}

	report, err := New().Run(domain.Workflow{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Results.DMsSent, "blank entries count by default")

	report, err = New(WithoutEmptyAccounts()).Run(domain.Workflow{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Results.DMsSent)
}

func TestRun_RejectsBrokenWorkflow(t *testing.T) {
	w, err := workflow.Build(domain.Config{Topic: "Go"})
	require.NoError(t, err)

	_, err = New().Run(w.Connect(workflow.NodePostTweet, "Nowhere"), domain.Config{})
	assert.ErrorIs(t, err, domain.ErrDanglingConnection)
}

func TestRun_RequiresPostingNode(t *testing.T) {
	w := domain.NewWorkflow("bare").
		Append(domain.Node{Name: "Only", Kind: domain.KindHTTP})

	_, err := New().Run(w, domain.Config{})
	assert.ErrorContains(t, err, "no posting node")
}
