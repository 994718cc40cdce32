package model

import "time"

// User is a local account resolved from a federated Google identity.
// GoogleID is a secondary unique key (enforced by a unique index).
type User struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	GoogleID  string    `json:"googleId" bson:"googleId"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// UserSummary is the shape /me and /auth/success return.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
