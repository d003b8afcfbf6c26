package workflow

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/dsl"
)

// Phase extends the graph built so far according to the configuration.
type Phase func(w domain.Workflow, cfg domain.Config) domain.Workflow

// BasePipeline emits the schedule trigger and the content generation call.
func (p *Pipeline) BasePipeline(w domain.Workflow, cfg domain.Config) domain.Workflow {
	trigger := dsl.Trigger(NodeScheduleTrigger).
		Param("rule", scheduleRule(cfg.ScheduleFrequency, p.opts.exactSchedule)).
		At(dsl.Spine.At(0)).
		Build()

	generate := dsl.HTTP(NodeGenerateTweet, PathGenerateTweet).
		Body("topic", cfg.Topic).
		Body("niche", cfg.Niche).
		Body("tone", string(cfg.Tone)).
		At(dsl.Spine.At(1)).
		Build()

	return dsl.Chain(w, "", trigger, generate)
}

// ImageBranch emits the posting node, preceded by image generation when enabled.
func (p *Pipeline) ImageBranch(w domain.Workflow, cfg domain.Config) domain.Workflow {
	if !cfg.IncludeImage {
		post := dsl.Action(NodePostTweet, "tweet").
			Param("text", domain.Ref(NodeGenerateTweet, "tweet")).
			At(dsl.Spine.At(2)).
			Build()
		return dsl.Chain(w, NodeGenerateTweet, post)
	}

	image := dsl.HTTP(NodeGenerateImage, PathGenerateImage).
		Body("topic", cfg.Topic).
		Body("niche", cfg.Niche).
		Body("tone", string(cfg.Tone)).
		At(dsl.Spine.At(2)).
		Build()

	post := dsl.Action(NodePostTweetWithImage, "tweet").
		Param("text", domain.Ref(NodeGenerateTweet, "tweet")).
		Param("attachments", domain.Ref(NodeGenerateImage, "imageUrl")).
		At(dsl.Spine.At(3)).
		Build()

	return dsl.Chain(w, NodeGenerateTweet, image, post)
}

// EngagementBranch emits a search whose results fan out to like, comment and
// retweet. It is a separate pipeline and never connects to the posting node.
func (p *Pipeline) EngagementBranch(w domain.Workflow, cfg domain.Config) domain.Workflow {
	if !cfg.EnableEngagement {
		return w
	}

	fan := dsl.Engagement.Offset(1, 0)

	search := dsl.Action(NodeSearch, "search").
		Param("searchText", cfg.Topic).
		Param("maxResults", SearchLimit).
		At(dsl.Engagement.At(0)).
		Build()

	like := dsl.Action(NodeLike, "like").
		Param("tweetId", domain.Ref(NodeSearch, "id")).
		At(fan.Offset(0, -50).At(0)).
		Build()

	comment := dsl.HTTP(NodeGenerateComment, PathGenerateComment).
		Body("tweet", domain.Ref(NodeSearch, "text")).
		Body("tone", string(cfg.Tone)).
		At(fan.Offset(0, 50).At(0)).
		Build()

	reply := dsl.Action(NodeReply, "tweet").
		Param("text", domain.Ref(NodeGenerateComment, "comment")).
		Param("inReplyToStatusId", domain.Ref(NodeSearch, "id")).
		At(fan.Offset(0, 50).At(1)).
		Build()

	retweet := dsl.Action(NodeRetweet, "retweet").
		Param("tweetId", domain.Ref(NodeSearch, "id")).
		At(fan.Offset(0, 150).At(0)).
		Build()

	w = w.Append(search).
		Append(like).
		Append(comment).
		Append(reply).
		Append(retweet)
	w = dsl.FanOut(w, NodeSearch, NodeLike, NodeGenerateComment, NodeRetweet)
	return w.Connect(NodeGenerateComment, NodeReply)
}

// DMBranch expands the target accounts and sends each a personalized message.
// It runs only when DMs are enabled and the account field is non-empty.
func (p *Pipeline) DMBranch(w domain.Workflow, cfg domain.Config) domain.Workflow {
	if !cfg.EnableDMs || cfg.TargetAccounts == "" {
		return w
	}
	accounts := ParseAccounts(cfg.TargetAccounts, p.opts.withoutEmptyAccount)
	if len(accounts) == 0 {
		return w
	}

	expand := dsl.Function(NodeTargetAccounts, accountsFunction(accounts)).
		At(dsl.DM.At(0)).
		Build()

	personalize := dsl.HTTP(NodePersonalizeDM, PathPersonalizeDM).
		Body("username", domain.Ref(NodeTargetAccounts, "username")).
		Body("template", cfg.DMMessage).
		Body("niche", cfg.Niche).
		At(dsl.DM.At(1)).
		Build()

	send := dsl.Action(NodeSendDM, "directMessage").
		Param("user", domain.Ref(NodePersonalizeDM, "username")).
		Param("text", domain.Ref(NodePersonalizeDM, "message")).
		At(dsl.DM.At(2)).
		Build()

	return dsl.Chain(w, "", expand, personalize, send)
}

// ParseAccounts splits a comma-separated list and trims each entry.
// Empty entries are kept unless dropEmpty is set.
func ParseAccounts(list string, dropEmpty bool) []string {
	parts := strings.Split(list, ",")
	accounts := make([]string, 0, len(parts))
	for _, part := range parts {
		a := strings.TrimSpace(part)
		if a == "" && dropEmpty {
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts
}

// accountsFunction renders the transform code that emits one item per account.
func accountsFunction(accounts []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// A []string always encodes.
	_ = enc.Encode(accounts)
	return "return " + strings.TrimSuffix(buf.String(), "\n") + ".map(account => ({ username: account }))"
}

func scheduleRule(freq domain.Frequency, exact bool) map[string]any {
	// Only "daily" carries an explicit interval; other values get the bare day field.
	interval := map[string]any{"field": "days"}
	switch {
	case freq == domain.FrequencyDaily:
		interval = map[string]any{"field": "days", "daysInterval": 1}
	case freq == domain.FrequencyHourly:
		interval = map[string]any{"field": "hours", "hoursInterval": 1}
	case exact && freq == domain.FrequencyTwiceDaily:
		interval = map[string]any{"field": "hours", "hoursInterval": 12}
	case exact && freq == domain.FrequencyWeekly:
		interval = map[string]any{"field": "weeks", "weeksInterval": 1}
	}
	return map[string]any{"interval": []any{interval}}
}
