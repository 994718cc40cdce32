package model

import "time"

// Booking statuses, stored lowercase. New bookings default to pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID            string     `json:"_id,omitempty" bson:"_id,omitempty"`
	TripID        string     `json:"tripId" bson:"tripId"`
	CustomerName  string     `json:"customerName" bson:"customerName"`
	CustomerEmail string     `json:"customerEmail" bson:"customerEmail"`
	NumTravelers  float64    `json:"numTravelers" bson:"numTravelers"`
	Status        string     `json:"status" bson:"status"`
	CreatedAt     *time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
