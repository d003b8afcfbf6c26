package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/tweetflow/internal/validator"
	"github.com/aretw0/tweetflow/pkg/domain"
)

// Describe summarizes a workflow as markdown: its nodes, its connections and
// the upstream fields each node reads.
func Describe(w domain.Workflow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", w.Name)
	fmt.Fprintf(&b, "%d nodes, %d connections.\n\n", len(w.Nodes), countEdges(w))

	b.WriteString("## Nodes\n\n")
	b.WriteString("| ID | Name | Type | Operation | Position |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, n := range w.Nodes {
		op, _ := n.Parameters["operation"].(string)
		fmt.Fprintf(&b, "| %s | %s | `%s` | %s | %d, %d |\n",
			n.ID, cell(n.Name), n.Kind.EngineType(), cell(op), n.Position[0], n.Position[1])
	}

	b.WriteString("\n## Entry points\n\n")
	roots := validator.Roots(w)
	if len(roots) == 0 {
		b.WriteString("_none_\n")
	}
	for _, n := range roots {
		fmt.Fprintf(&b, "- %s\n", n.Name)
	}

	b.WriteString("\n## Connections\n\n")
	sources := make([]string, 0, len(w.Connections))
	for src := range w.Connections {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	if len(sources) == 0 {
		b.WriteString("_none_\n")
	}
	for _, src := range sources {
		targets := w.Outgoing(src)
		names := make([]string, len(targets))
		for i, t := range targets {
			names[i] = t.Node
		}
		fmt.Fprintf(&b, "- **%s** → %s\n", src, strings.Join(names, ", "))
	}

	var refs []string
	for _, n := range w.Nodes {
		for _, r := range n.References() {
			refs = append(refs, fmt.Sprintf("- **%s** reads `%s` from %s", n.Name, r.Field, r.Node))
		}
		// Decoded documents carry references as plain expressions.
		for _, k := range sortedParams(n.Parameters) {
			if v, ok := n.Parameters[k].(string); ok && domain.IsPlaceholder(v) {
				refs = append(refs, fmt.Sprintf("- **%s** sets `%s` to `%s`", n.Name, k, v))
			}
		}
	}
	if len(refs) > 0 {
		b.WriteString("\n## Data flow\n\n")
		b.WriteString(strings.Join(refs, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func sortedParams(params map[string]any) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func countEdges(w domain.Workflow) int {
	n := 0
	for _, conn := range w.Connections {
		n += len(conn.Targets())
	}
	return n
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
