// Package events provides a unified event system for real-time lead updates.
//
// This package implements a broker pattern that connects Leadstream's hooks
// system to transport mechanisms (SSE today, others later) through a common
// event pipeline. Handlers publish once; the broker fans out to every
// connected subscriber.
package events

import "time"

// EventType represents the type of lead event.
type EventType string

// Event types for lead table changes.
const (
	// Lead events (from Leadstream hooks).
	LeadUpdated   EventType = "lead.updated"
	TableReplaced EventType = "table.replaced"

	// Client events (from transport layers).
	ClientConnected EventType = "client.connected"
)

// Event represents a lead event with type, timestamp, and data.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}
