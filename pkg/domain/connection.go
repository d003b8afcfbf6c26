package domain

// EdgeMain is the only edge type currently emitted.
const EdgeMain = "main"

// Target is one downstream end of a connection.
type Target struct {
	Node string `json:"node" yaml:"node"`
	Type string `json:"type" yaml:"type"`
	// Index is the input slot on the target node. Always 0 for now.
	Index int `json:"index" yaml:"index"`
}

// Connection lists the targets of one source node.
// Main is indexed by output slot; every target of a fan-out shares slot 0.
type Connection struct {
	Main [][]Target `json:"main" yaml:"main"`
}

// Targets flattens all output slots.
func (c Connection) Targets() []Target {
	var out []Target
	for _, slot := range c.Main {
		out = append(out, slot...)
	}
	return out
}

// Connections maps a source node name to its outgoing connection.
type Connections map[string]Connection

func (c Connections) clone() Connections {
	out := make(Connections, len(c))
	for name, conn := range c {
		slots := make([][]Target, len(conn.Main))
		for i, slot := range conn.Main {
			slots[i] = append([]Target(nil), slot...)
		}
		out[name] = Connection{Main: slots}
	}
	return out
}
