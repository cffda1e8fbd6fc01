package models

import "time"

type EventAction string

const (
	EventCreated EventAction = "created"
	EventUpdated EventAction = "updated"
	EventDeleted EventAction = "deleted"
)

// ResourceEvent describes a successful mutation. Payload is the document
// after the change, or nil for deletions.
type ResourceEvent struct {
	Resource string      `json:"resource"`
	Action   EventAction `json:"action"`
	ID       string      `json:"id"`
	At       time.Time   `json:"at"`
	Payload  interface{} `json:"payload,omitempty"`
}
