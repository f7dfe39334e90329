package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Camp represents a medical camp open for registration.
// Camps are created, updated and (via their join records) administered
// only by admin-authorized callers.
type Camp struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                   string             `bson:"name" json:"name"`
	Fees                   float64            `bson:"fees" json:"fees"`
	Location               string             `bson:"location" json:"location"`
	DateTime               string             `bson:"dateTime" json:"dateTime"`
	HealthcareProfessional string             `bson:"healthcareProfessional" json:"healthcareProfessional"`
	Description            string             `bson:"description,omitempty" json:"description,omitempty"`
	Image                  string             `bson:"image,omitempty" json:"image,omitempty"`
}

// CampUpdate holds the fields a camp PATCH may change. All fields are
// set unconditionally, mirroring the update contract of the endpoint.
type CampUpdate struct {
	Name                   string  `bson:"name"`
	Fees                   float64 `bson:"fees"`
	Location               string  `bson:"location"`
	DateTime               string  `bson:"dateTime"`
	HealthcareProfessional string  `bson:"healthcareProfessional"`
}
