package entity

import "time"

// Brand representa una marca del catálogo. El nombre es único.
type Brand struct {
	ID           string
	Name         string
	LogoURL      string
	LogoPublicID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
