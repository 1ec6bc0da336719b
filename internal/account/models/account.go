// Package models defines the persistent account entity shared by the
// repository and service layers.
package models

import "time"

// Role is the account authorization level, stored as a Postgres enum.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is a committed account row. Email is globally unique; the storage
// layer enforces at most one committed account per email.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
