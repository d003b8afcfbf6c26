package dsl

import "github.com/aretw0/tweetflow/pkg/domain"

// Lane places nodes left to right at a fixed height.
type Lane struct {
	X, Y, Step int
}

// Lanes used by the workflow phases. Columns never overlap within a lane.
var (
	Spine      = Lane{X: 250, Y: 300, Step: 200}
	Engagement = Lane{X: 1050, Y: 200, Step: 200}
	DM         = Lane{X: 1050, Y: 450, Step: 200}
)

// At returns the position of column i.
func (l Lane) At(i int) domain.Position {
	return domain.Position{l.X + i*l.Step, l.Y}
}

// Offset returns a lane shifted by dx columns and dy pixels.
func (l Lane) Offset(columns, dy int) Lane {
	return Lane{X: l.X + columns*l.Step, Y: l.Y + dy, Step: l.Step}
}

// Chain appends nodes in order and connects them linearly.
// When from is non-empty it is connected to the first node.
func Chain(w domain.Workflow, from string, nodes ...domain.Node) domain.Workflow {
	prev := from
	for _, n := range nodes {
		w = w.Append(n)
		if prev != "" {
			w = w.Connect(prev, n.Name)
		}
		prev = n.Name
	}
	return w
}

// FanOut connects from to each of targets, which must already be in w.
func FanOut(w domain.Workflow, from string, targets ...string) domain.Workflow {
	for _, t := range targets {
		w = w.Connect(from, t)
	}
	return w
}
