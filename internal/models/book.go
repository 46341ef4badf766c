package models

import (
	"time"
)

type Book struct {
	ID        string    `firestore:"-" json:"id"` // document ID
	Name      string    `firestore:"name" json:"name"`
	OwnerUID  string    `firestore:"ownerUid" json:"ownerUid"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
