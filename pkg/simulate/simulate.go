// Package simulate dry-runs a built workflow.
//
// Nothing is posted and no API is called: the run validates the document,
// walks it in execution order and reports the actions a real run would take.
package simulate

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/tweetflow/internal/validator"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/workflow"
)

// Fixed engagement counts reported when the engagement branch is enabled.
const (
	Liked     = 5
	Commented = 3
	Retweeted = 2
)

// Engagement counts the actions of the engagement branch.
type Engagement struct {
	Liked     int `json:"liked"`
	Commented int `json:"commented"`
	Retweeted int `json:"retweeted"`
}

// Results describes what a run did.
type Results struct {
	TweetGenerated bool `json:"tweetGenerated"`
	ImageGenerated bool `json:"imageGenerated"`
	Posted         bool `json:"posted"`
	// EngagementActions is nil when the engagement branch is disabled.
	EngagementActions *Engagement `json:"engagementActions"`
	DMsSent           int         `json:"dmsSent"`
	Timestamp         time.Time   `json:"timestamp"`
}

// Report is the outcome of Run.
type Report struct {
	Message string  `json:"message"`
	Results Results `json:"results"`
	// Steps lists the executed node names in execution order.
	Steps []string `json:"steps"`
}

// Simulator runs workflows without side effects.
type Simulator struct {
	now       func() time.Time
	dropEmpty bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		s.now = now
	}
}

// WithoutEmptyAccounts stops blank entries of the account list from counting
// as sent DMs, matching workflow.WithoutEmptyAccounts.
func WithoutEmptyAccounts() Option {
	return func(s *Simulator) {
		s.dropEmpty = true
	}
}

// New creates a Simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run simulates w for cfg. When w has no nodes it is built from cfg first.
// It fails when the document does not pass validation or has no posting node.
func (s *Simulator) Run(w domain.Workflow, cfg domain.Config) (Report, error) {
	if len(w.Nodes) == 0 {
		var opts []workflow.Option
		if s.dropEmpty {
			opts = append(opts, workflow.WithoutEmptyAccounts())
		}
		built, err := workflow.Build(cfg, opts...)
		if err != nil {
			return Report{}, err
		}
		w = built
	}

	if err := validator.Check(w); err != nil {
		return Report{}, err
	}
	if _, ok := workflow.PostingNode(w); !ok {
		return Report{}, fmt.Errorf("workflow %q has no posting node", w.Name)
	}
	steps, _ := validator.Order(w)

	results := Results{
		TweetGenerated: true,
		ImageGenerated: cfg.IncludeImage,
		Posted:         true,
		Timestamp:      s.now().UTC(),
	}
	if cfg.EnableEngagement {
		results.EngagementActions = &Engagement{Liked: Liked, Commented: Commented, Retweeted: Retweeted}
	}
	if cfg.EnableDMs {
		results.DMsSent = len(workflow.ParseAccounts(cfg.TargetAccounts, s.dropEmpty))
	}

	return Report{
		Message: Message(cfg, results),
		Results: results,
		Steps:   steps,
	}, nil
}

// Message summarizes a run in one line.
func Message(cfg domain.Config, r Results) string {
	parts := []string{"Workflow executed successfully!"}
	if cfg.IncludeImage {
		parts = append(parts, "Tweet with AI image posted.")
	} else {
		parts = append(parts, "Tweet posted.")
	}
	if cfg.EnableEngagement {
		parts = append(parts, "Engagement actions completed.")
	}
	if cfg.EnableDMs {
		parts = append(parts, fmt.Sprintf("%d DMs sent.", r.DMsSent))
	}
	return strings.Join(parts, " ")
}
