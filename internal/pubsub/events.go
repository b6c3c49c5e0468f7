// Package pubsub fans out content change notifications to the UI.
package pubsub

import (
	"context"
	"time"
)

// EventType classifies a published event.
type EventType string

const (
	// ChangedEvent reports that watched content was modified on disk.
	ChangedEvent EventType = "changed"
	// RemovedEvent reports that watched content disappeared.
	RemovedEvent EventType = "removed"
	// FailedEvent reports a watcher error.
	FailedEvent EventType = "failed"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
