package validator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/tweetflow/pkg/domain"
)

// IntegrityError collects every problem found in a workflow document.
type IntegrityError struct {
	Problems []error
}

func (e *IntegrityError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Problems), strings.Join(msgs, "\n- "))
}

func (e *IntegrityError) Unwrap() []error {
	return e.Problems
}

// Check verifies the structural invariants of a workflow document:
// sequential ids, unique names, known kinds, no dangling connections,
// no cycles, and references that only point upstream.
func Check(w domain.Workflow) error {
	var problems []error

	names := make(map[string]bool, len(w.Nodes))
	for i, n := range w.Nodes {
		if want := strconv.Itoa(i + 1); n.ID != want {
			problems = append(problems, fmt.Errorf("%w: node %q has id %q, want %q", domain.ErrNodeIDSequence, n.Name, n.ID, want))
		}
		if names[n.Name] {
			problems = append(problems, fmt.Errorf("%w: %q", domain.ErrDuplicateNode, n.Name))
		}
		names[n.Name] = true
		if !n.Kind.Valid() {
			problems = append(problems, fmt.Errorf("%w: node %q has kind %q", domain.ErrUnknownKind, n.Name, n.Kind))
		}
	}

	dangling := false
	for _, src := range sortedSources(w) {
		if !names[src] {
			problems = append(problems, fmt.Errorf("%w: source %q", domain.ErrDanglingConnection, src))
			dangling = true
		}
		for _, t := range w.Outgoing(src) {
			if !names[t.Node] {
				problems = append(problems, fmt.Errorf("%w: %q -> %q", domain.ErrDanglingConnection, src, t.Node))
				dangling = true
			}
		}
	}

	if cycle := findCycle(w); cycle != nil {
		problems = append(problems, fmt.Errorf("%w: %s", domain.ErrCycle, strings.Join(cycle, " -> ")))
	} else if !dangling {
		// Upstream sets are only meaningful on a well-formed DAG.
		for _, n := range w.Nodes {
			up := Upstream(w, n.Name)
			for _, ref := range n.References() {
				if !up[ref.Node] {
					problems = append(problems, fmt.Errorf("%w: %q reads %s from %q", domain.ErrUnresolvedReference, n.Name, ref.Field, ref.Node))
				}
			}
		}
	}

	if len(problems) > 0 {
		return &IntegrityError{Problems: problems}
	}
	return nil
}

// Reachable crawls the connections breadth-first from start and returns the
// visited node names in visit order, start included.
func Reachable(w domain.Workflow, start string) []string {
	visited := map[string]bool{start: true}
	order := []string{start}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, t := range w.Outgoing(current) {
			if !visited[t.Node] {
				visited[t.Node] = true
				order = append(order, t.Node)
				queue = append(queue, t.Node)
			}
		}
	}
	return order
}

// Upstream returns the set of nodes from which name can be reached.
func Upstream(w domain.Workflow, name string) map[string]bool {
	up := make(map[string]bool)
	queue := []string{name}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, src := range w.Incoming(current) {
			if !up[src] {
				up[src] = true
				queue = append(queue, src)
			}
		}
	}
	return up
}

// Roots returns the nodes without incoming connections, in emission order.
func Roots(w domain.Workflow) []domain.Node {
	var roots []domain.Node
	for _, n := range w.Nodes {
		if len(w.Incoming(n.Name)) == 0 {
			roots = append(roots, n)
		}
	}
	return roots
}

const (
	white = iota
	grey
	black
)

// findCycle runs a colored DFS from every node in emission order and returns
// the first cycle found as a path of names, or nil.
func findCycle(w domain.Workflow) []string {
	color := make(map[string]int, len(w.Nodes))
	var stack []string
	var cycle []string

	var visit func(name string) bool
	visit = func(name string) bool {
		color[name] = grey
		stack = append(stack, name)
		for _, t := range w.Outgoing(name) {
			switch color[t.Node] {
			case grey:
				for i, s := range stack {
					if s == t.Node {
						cycle = append(append([]string{}, stack[i:]...), t.Node)
						break
					}
				}
				return true
			case white:
				if visit(t.Node) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[name] = black
		return false
	}

	for _, n := range w.Nodes {
		if color[n.Name] == white && visit(n.Name) {
			return cycle
		}
	}
	return nil
}

func sortedSources(w domain.Workflow) []string {
	index := make(map[string]int, len(w.Nodes))
	for i, n := range w.Nodes {
		index[n.Name] = i
	}
	pos := func(s string) int {
		if i, ok := index[s]; ok {
			return i
		}
		return len(index)
	}

	sources := make([]string, 0, len(w.Connections))
	for src := range w.Connections {
		sources = append(sources, src)
	}
	// Emission order first, unknown sources last in lexical order.
	sort.Slice(sources, func(i, j int) bool {
		pi, pj := pos(sources[i]), pos(sources[j])
		if pi != pj {
			return pi < pj
		}
		return sources[i] < sources[j]
	})
	return sources
}

// Order returns the node names in an execution order: every node comes after
// all of its sources. Ties are broken by emission order. The second result is
// false when the graph has a cycle or a dangling connection.
func Order(w domain.Workflow) ([]string, bool) {
	index := make(map[string]int, len(w.Nodes))
	for i, n := range w.Nodes {
		index[n.Name] = i
	}

	indegree := make([]int, len(w.Nodes))
	for src, conn := range w.Connections {
		if _, ok := index[src]; !ok {
			return nil, false
		}
		for _, t := range conn.Targets() {
			i, ok := index[t.Node]
			if !ok {
				return nil, false
			}
			indegree[i]++
		}
	}

	var ready []int
	for i, d := range indegree {
		if d == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]string, 0, len(w.Nodes))
	for len(ready) > 0 {
		sort.Ints(ready)
		current := ready[0]
		ready = ready[1:]
		name := w.Nodes[current].Name
		order = append(order, name)

		for _, t := range w.Outgoing(name) {
			i := index[t.Node]
			indegree[i]--
			if indegree[i] == 0 {
				ready = append(ready, i)
			}
		}
	}
	return order, len(order) == len(w.Nodes)
}
