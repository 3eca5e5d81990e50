package dto

import "time"

// CreateBrandRequest body para POST /api/brands.
type CreateBrandRequest struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	LogoPublicID string `json:"logo_public_id"`
}

// UpdateBrandRequest body para PUT /api/brands/:id. Campos nil no se tocan.
type UpdateBrandRequest struct {
	Name         *string `json:"name,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
	LogoPublicID *string `json:"logo_public_id,omitempty"`
}

// BrandResponse marca en respuestas.
type BrandResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logo_url,omitempty"`
	LogoPublicID string    `json:"logo_public_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
