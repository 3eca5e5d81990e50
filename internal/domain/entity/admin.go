package entity

import "time"

// Admin usuario administrador del depósito.
type Admin struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
