// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// AgentToolCall is the predicate function for agenttoolcall builders.
type AgentToolCall func(*sql.Selector)

// ClientVuln is the predicate function for clientvuln builders.
type ClientVuln func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Library is the predicate function for library builders.
type Library func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectDependency is the predicate function for projectdependency builders.
type ProjectDependency func(*sql.Selector)

// UpstreamVuln is the predicate function for upstreamvuln builders.
type UpstreamVuln func(*sql.Selector)
