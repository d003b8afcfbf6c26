package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/tweetflow/pkg/domain"
)

// GraphOverlay highlights nodes on the rendered graph, e.g. the posting node.
type GraphOverlay struct {
	Highlight []string
}

// GenerateMermaid produces a Mermaid flowchart (left to right) from a workflow.
// It applies semantic styling per node kind:
// - Trigger: ((Circle))
// - HTTP call: [[Subroutine]]
// - Transform: {{Hexagon}}
// - Platform action: [Rectangle]
// Fan-out edges keep the order of the connection targets.
func GenerateMermaid(w domain.Workflow, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make(map[string]string, len(w.Nodes))
	for _, node := range w.Nodes {
		ids[node.Name] = "n" + node.ID
	}

	for _, node := range w.Nodes {
		opener, closer := "[", "]"
		switch node.Kind {
		case domain.KindTrigger:
			opener, closer = "((", "))"
		case domain.KindHTTP:
			opener, closer = "[[", "]]"
		case domain.KindTransform:
			opener, closer = "{{", "}}"
		}

		label := escapeLabel(node.Name)
		if op, ok := node.Parameters["operation"].(string); ok {
			label = fmt.Sprintf("%s <br/> %s", label, escapeLabel(op))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[node.Name], opener, label, closer))
	}

	for _, node := range w.Nodes {
		for _, t := range w.Outgoing(node.Name) {
			to, ok := ids[t.Node]
			if !ok {
				to = sanitizeMermaidID(t.Node)
			}
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", ids[node.Name], to))
		}
	}

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		seen := make(map[string]bool)
		for _, name := range overlay.Highlight {
			id, ok := ids[name]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s highlight;\n", id))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(id)
}
