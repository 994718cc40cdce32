package events

import "time"

const (
	EntityTrip    = "trip"
	EntityBooking = "booking"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a committed change to a stored entity. Events are
// observational: consumers must not treat them as the source of truth.
type Event struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}
