/*
Package domain contains the core models of a generated automation workflow.

It defines the graph document handed to the external workflow engine (Workflow, Node,
Connection), the deferred references embedded in node parameters, and the flat
configuration record the builder consumes. This package is kept pure and free of
external dependencies like I/O or persistence.

# Key Entities

  - Config: the immutable input record (topic, niche, tone, feature flags).
  - Node: one unit of work in the external pipeline (trigger, HTTP call, platform action, transform).
  - Connection: directed edges from a source node name to its downstream targets.
  - Workflow: the ordered nodes plus the connection map, serialized as the engine's JSON document.
  - Reference: a placeholder resolved by the engine at run time, never by this module.
*/
package domain
