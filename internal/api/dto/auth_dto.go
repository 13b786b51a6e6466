package dto

import "time"

type LoginDTO struct {
	Token string `json:"token"`
}

type UserDTO struct {
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	LastLogin      time.Time `json:"lastLogin"`
}

type LoginResponseDTO struct {
	AccessToken string   `json:"accessToken"`
	User        *UserDTO `json:"user"`
}

type AuthCheckDTO struct {
	UserID string `json:"userId"`
	Valid  bool   `json:"valid"`
}
