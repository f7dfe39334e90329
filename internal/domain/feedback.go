package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback represents a participant's post-camp feedback.
// Invariant: at most one Feedback per (campId, email) pair.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CampID    string             `bson:"campId" json:"campId"`
	Email     string             `bson:"email" json:"email"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
