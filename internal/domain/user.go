package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. A user is a plain member until an admin promotes them.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered user of the platform.
// The email is the natural key: at most one user document exists per email.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
