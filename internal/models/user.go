package models

import "time"

type User struct {
	ID           int       `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never serialized
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}
