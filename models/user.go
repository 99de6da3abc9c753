package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// Valid reports whether s is one of the account statuses an admin may set.
func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

const DefaultProfilePicture = "https://i.ibb.co.com/tQ1tBdV/dummy-profile-picture.jpg"

type User struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email          string             `json:"email" bson:"email"`
	Username       string             `json:"username" bson:"username"`
	Password       string             `json:"-" bson:"password"`
	Role           UserRole           `json:"role" bson:"role"`
	Status         UserStatus         `json:"status" bson:"status"`
	ProfilePicture string             `json:"profilePicture" bson:"profilePicture"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
