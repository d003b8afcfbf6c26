package dsl

import "github.com/aretw0/tweetflow/pkg/domain"

// AppURLVar is the engine environment variable holding this service's base URL.
const AppURLVar = "APP_URL"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node domain.Node
}

func newNode(name string, kind domain.Kind) *NodeBuilder {
	return &NodeBuilder{node: domain.Node{
		Name:       name,
		Kind:       kind,
		Parameters: make(map[string]any),
	}}
}

// Trigger starts a schedule trigger node.
func Trigger(name string) *NodeBuilder {
	return newNode(name, domain.KindTrigger)
}

// HTTP starts an HTTP-call node that POSTs to path on the service base URL.
func HTTP(name, path string) *NodeBuilder {
	n := newNode(name, domain.KindHTTP)
	n.node.Parameters["url"] = domain.Env(AppURLVar, path)
	n.node.Parameters["method"] = "POST"
	n.node.Parameters["bodyParameters"] = make(map[string]any)
	return n
}

// Action starts a platform-action node performing operation.
func Action(name, operation string) *NodeBuilder {
	n := newNode(name, domain.KindPlatform)
	n.node.Parameters["operation"] = operation
	return n
}

// Function starts an inline-transform node running code.
func Function(name, code string) *NodeBuilder {
	n := newNode(name, domain.KindTransform)
	n.node.Parameters["functionCode"] = code
	return n
}

// Param sets a parameter.
func (n *NodeBuilder) Param(key string, value any) *NodeBuilder {
	n.node.Parameters[key] = value
	return n
}

// Body sets a field of the request body of an HTTP node.
func (n *NodeBuilder) Body(key string, value any) *NodeBuilder {
	body, ok := n.node.Parameters["bodyParameters"].(map[string]any)
	if !ok {
		body = make(map[string]any)
		n.node.Parameters["bodyParameters"] = body
	}
	body[key] = value
	return n
}

// At sets the layout position.
func (n *NodeBuilder) At(pos domain.Position) *NodeBuilder {
	n.node.Position = pos
	return n
}

// Build returns the configured node. Its id is assigned when appended to a workflow.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}
