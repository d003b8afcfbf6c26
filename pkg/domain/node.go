package domain

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the capability class of a node.
// The set is closed; each kind has its own parameter shape.
type Kind string

const (
	// KindTrigger starts the pipeline on a schedule.
	KindTrigger Kind = "trigger"
	// KindHTTP calls an HTTP endpoint (content generation).
	KindHTTP Kind = "http"
	// KindPlatform performs an action on the social platform (post, like, search...).
	KindPlatform Kind = "platform"
	// KindTransform runs an inline function over its input items.
	KindTransform Kind = "transform"
)

// Engine type identifiers, as expected by the external workflow engine.
const (
	TypeScheduleTrigger = "n8n-nodes-base.scheduleTrigger"
	TypeHTTPRequest     = "n8n-nodes-base.httpRequest"
	TypeTwitter         = "n8n-nodes-base.twitter"
	TypeFunction        = "n8n-nodes-base.function"
)

var kindTypes = map[Kind]string{
	KindTrigger:   TypeScheduleTrigger,
	KindHTTP:      TypeHTTPRequest,
	KindPlatform:  TypeTwitter,
	KindTransform: TypeFunction,
}

// EngineType returns the engine's type identifier for the kind.
func (k Kind) EngineType() string {
	return kindTypes[k]
}

// Valid reports whether k belongs to the closed set of kinds.
func (k Kind) Valid() bool {
	_, ok := kindTypes[k]
	return ok
}

// ParseKind maps an engine type identifier back to its Kind.
func ParseKind(engineType string) (Kind, error) {
	for k, t := range kindTypes {
		if t == engineType {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, engineType)
}

// MarshalJSON serializes the kind as the engine type identifier.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	return json.Marshal(k.EngineType())
}

// UnmarshalJSON accepts an engine type identifier.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML serializes the kind as the engine type identifier.
func (k Kind) MarshalYAML() (any, error) {
	return k.EngineType(), nil
}

// Position is a pair of cosmetic layout coordinates (x, y).
type Position [2]int

// Node represents one unit of work in the generated pipeline.
type Node struct {
	// ID is assigned by the workflow on append: "1", "2", ... in emission order.
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"type" yaml:"type"`

	// Parameters holds the kind-specific configuration.
	// Values may be Reference or EnvReference placeholders.
	Parameters map[string]any `json:"parameters" yaml:"parameters"`

	Position Position `json:"position" yaml:"position,flow"`
}

// References returns every deferred reference found in the node parameters,
// walking nested maps and slices. Order follows sorted keys.
func (n Node) References() []Reference {
	var refs []Reference
	collectReferences(n.Parameters, &refs)
	return refs
}

func collectReferences(v any, refs *[]Reference) {
	switch val := v.(type) {
	case Reference:
		*refs = append(*refs, val)
	case map[string]any:
		for _, k := range sortedKeys(val) {
			collectReferences(val[k], refs)
		}
	case []any:
		for _, item := range val {
			collectReferences(item, refs)
		}
	}
}
