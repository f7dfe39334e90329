package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinRecord represents a participant's registration for a camp.
// Invariant: at most one JoinRecord per (campName, email) pair.
type JoinRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CampName        string             `bson:"campName" json:"campName"`
	Email           string             `bson:"email" json:"email"`
	ParticipantName string             `bson:"participantName,omitempty" json:"participantName,omitempty"`
	Fees            float64            `bson:"fees,omitempty" json:"fees,omitempty"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	Age             int                `bson:"age,omitempty" json:"age,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender          string             `bson:"gender,omitempty" json:"gender,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ParticipantCount is one row of the per-camp registration aggregation.
type ParticipantCount struct {
	CampName string `bson:"_id" json:"_id"`
	Count    int64  `bson:"count" json:"count"`
}
