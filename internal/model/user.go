package model

import "time"

// User is created on first Google login and refreshed on every
// subsequent one. There is no deletion path.
type User struct {
	UserID         string    `bson:"userId" json:"userId"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	ProfilePicture string    `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	LastLogin      time.Time `bson:"lastLogin" json:"lastLogin"`
}

// Author is the public snapshot of a user embedded into posts and
// comments at creation time. It is never refreshed afterwards.
type Author struct {
	UserID         string `bson:"userId" json:"userId"`
	Name           string `bson:"name" json:"name"`
	ProfilePicture string `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
}

// Snapshot builds the embedded author view of a user.
func (u *User) Snapshot() Author {
	return Author{
		UserID:         u.UserID,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
	}
}
