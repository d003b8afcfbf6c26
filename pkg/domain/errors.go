package domain

import "errors"

// ErrInvalidConfig is returned when the configuration has a malformed shape
// (a field present with the wrong primitive type).
var ErrInvalidConfig = errors.New("invalid workflow configuration")

// ErrUnknownKind is returned for a node type outside the closed set.
var ErrUnknownKind = errors.New("unknown node kind")

// Integrity violations reported by graph validation.
var (
	ErrDuplicateNode       = errors.New("duplicate node name")
	ErrDanglingConnection  = errors.New("connection targets unknown node")
	ErrCycle               = errors.New("cycle detected")
	ErrNodeIDSequence      = errors.New("node ids out of sequence")
	ErrUnresolvedReference = errors.New("reference to non-upstream node")
)

// ErrCacheMiss is returned by content caches when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")
