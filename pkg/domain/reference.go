package domain

import (
	"encoding/json"
	"strings"
)

// Reference is a deferred reference to a field of an upstream node's output.
// It is resolved by the workflow engine at run time.
//
// Node names the producing node and is kept only for integrity checks;
// the wire format addresses the incoming item ("$json") and carries just the field.
type Reference struct {
	Node  string
	Field string
}

// Ref creates a Reference to field of the output produced by node.
func Ref(node, field string) Reference {
	return Reference{Node: node, Field: field}
}

// String returns the engine placeholder, e.g. "={{$json.tweet}}".
func (r Reference) String() string {
	return "={{$json." + r.Field + "}}"
}

func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r Reference) MarshalYAML() (any, error) {
	return r.String(), nil
}

// EnvReference is a placeholder for an engine environment variable,
// optionally followed by a literal suffix: "={{$env.APP_URL}}/api/generate-tweet".
type EnvReference struct {
	Var    string
	Suffix string
}

// Env creates an EnvReference.
func Env(variable, suffix string) EnvReference {
	return EnvReference{Var: variable, Suffix: suffix}
}

func (e EnvReference) String() string {
	return "={{$env." + e.Var + "}}" + e.Suffix
}

func (e EnvReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e EnvReference) MarshalYAML() (any, error) {
	return e.String(), nil
}

// IsPlaceholder reports whether s looks like an engine expression ("={{ ... }}").
func IsPlaceholder(s string) bool {
	return strings.HasPrefix(s, "={{") && strings.Contains(s, "}}")
}
