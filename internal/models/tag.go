package models

import "time"

// UserTag is one entry of a user's tag vocabulary. Name is normalized and doubles as
// the document ID.
type UserTag struct {
	Name       string    `firestore:"name" json:"name"`
	LastUsedAt time.Time `firestore:"lastUsedAt" json:"lastUsedAt"`
}
