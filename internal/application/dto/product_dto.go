package dto

import (
	"time"

	"github.com/tu-usuario/depot-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string                    `json:"name"`
	BrandID       string                    `json:"brand_id"`
	Description   entity.ProductDescription `json:"description"`
	ImageURL      string                    `json:"image_url"`
	ImagePublicID string                    `json:"image_public_id"`
	Prices        entity.TierPrices         `json:"prices"`
	Stock         int                       `json:"stock"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name          *string                    `json:"name,omitempty"`
	BrandID       *string                    `json:"brand_id,omitempty"`
	Description   *entity.ProductDescription `json:"description,omitempty"`
	ImageURL      *string                    `json:"image_url,omitempty"`
	ImagePublicID *string                    `json:"image_public_id,omitempty"`
	Prices        *entity.TierPrices         `json:"prices,omitempty"`
	Stock         *int                       `json:"stock,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	BrandID       string                    `json:"brand_id"`
	Description   entity.ProductDescription `json:"description"`
	ImageURL      string                    `json:"image_url,omitempty"`
	ImagePublicID string                    `json:"image_public_id,omitempty"`
	Prices        entity.TierPrices         `json:"prices"`
	Stock         int                       `json:"stock"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}
