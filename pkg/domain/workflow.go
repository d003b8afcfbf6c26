package domain

import (
	"sort"
	"strconv"
)

// DefaultWorkflowName is the document name expected by the automation UI.
const DefaultWorkflowName = "Twitter Automation Workflow"

// Workflow is the graph document handed to the external engine.
//
// Values are treated as immutable: Append and Connect return extended copies
// and never modify the receiver.
type Workflow struct {
	Name        string      `json:"name" yaml:"name"`
	Nodes       []Node      `json:"nodes" yaml:"nodes"`
	Connections Connections `json:"connections" yaml:"connections"`
}

// NewWorkflow returns an empty document.
func NewWorkflow(name string) Workflow {
	return Workflow{
		Name:        name,
		Nodes:       []Node{},
		Connections: Connections{},
	}
}

// NextID returns the id the next appended node will receive.
func (w Workflow) NextID() string {
	return strconv.Itoa(len(w.Nodes) + 1)
}

// Append returns a copy of w with n added at the end.
// The node id is always (nodes already emitted) + 1; any id set on n is replaced.
func (w Workflow) Append(n Node) Workflow {
	n.ID = w.NextID()
	nodes := make([]Node, len(w.Nodes), len(w.Nodes)+1)
	copy(nodes, w.Nodes)
	w.Nodes = append(nodes, n)
	return w
}

// Connect returns a copy of w with an edge from -> to on output slot 0.
func (w Workflow) Connect(from, to string) Workflow {
	conns := w.Connections.clone()
	conn := conns[from]
	if len(conn.Main) == 0 {
		conn.Main = [][]Target{{}}
	}
	conn.Main[0] = append(conn.Main[0], Target{Node: to, Type: EdgeMain, Index: 0})
	conns[from] = conn
	w.Connections = conns
	return w
}

// Node looks up a node by name.
func (w Workflow) Node(name string) (Node, bool) {
	for _, n := range w.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Outgoing returns the targets of the named node, or nil.
func (w Workflow) Outgoing(name string) []Target {
	return w.Connections[name].Targets()
}

// Incoming returns the names of nodes that connect into name, sorted.
func (w Workflow) Incoming(name string) []string {
	var sources []string
	for src, conn := range w.Connections {
		for _, t := range conn.Targets() {
			if t.Node == name {
				sources = append(sources, src)
				break
			}
		}
	}
	sort.Strings(sources)
	return sources
}

// Sinks returns the nodes with no outgoing connections, in emission order.
func (w Workflow) Sinks() []Node {
	var out []Node
	for _, n := range w.Nodes {
		if len(w.Outgoing(n.Name)) == 0 {
			out = append(out, n)
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
