package workflow

import (
	"fmt"

	"github.com/aretw0/tweetflow/internal/validator"
	"github.com/aretw0/tweetflow/pkg/domain"
)

// Pipeline holds the builder options. It is stateless between builds and safe
// for concurrent use.
type Pipeline struct {
	opts options
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

// Phases returns the construction phases in application order.
func (p *Pipeline) Phases() []Phase {
	return []Phase{p.BasePipeline, p.ImageBranch, p.EngagementBranch, p.DMBranch}
}

// Build folds every phase over an empty document and checks the result.
func (p *Pipeline) Build(cfg domain.Config) (domain.Workflow, error) {
	w := domain.NewWorkflow(p.opts.name)
	for _, phase := range p.Phases() {
		w = phase(w, cfg)
	}
	if err := validator.Check(w); err != nil {
		return domain.Workflow{}, fmt.Errorf("workflow integrity: %w", err)
	}
	return w, nil
}

// Build constructs the workflow document for cfg with a one-off Pipeline.
func Build(cfg domain.Config, opts ...Option) (domain.Workflow, error) {
	return New(opts...).Build(cfg)
}

// PostingNode locates the posting node structurally: the unique sink among the
// nodes reachable from the trigger. Its name depends on the image branch.
func PostingNode(w domain.Workflow) (domain.Node, bool) {
	var trigger string
	for _, n := range w.Nodes {
		if n.Kind == domain.KindTrigger {
			trigger = n.Name
			break
		}
	}
	if trigger == "" {
		return domain.Node{}, false
	}

	reachable := make(map[string]bool)
	for _, name := range validator.Reachable(w, trigger) {
		reachable[name] = true
	}
	var sink domain.Node
	found := 0
	for _, n := range w.Sinks() {
		if reachable[n.Name] {
			sink = n
			found++
		}
	}
	return sink, found == 1
}
