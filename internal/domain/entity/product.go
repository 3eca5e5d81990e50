package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TierPrices precios del producto por nivel de cliente. Los tres son obligatorios.
type TierPrices struct {
	Retail         decimal.Decimal `json:"retail"`
	Wholesale      decimal.Decimal `json:"wholesale"`
	SuperWholesale decimal.Decimal `json:"superwholesale"`
}

// For devuelve el precio que corresponde al nivel indicado.
// Un nivel desconocido cae en retail.
func (p TierPrices) For(tier string) decimal.Decimal {
	switch tier {
	case TierWholesale:
		return p.Wholesale
	case TierSuperWholesale:
		return p.SuperWholesale
	default:
		return p.Retail
	}
}

// ProductDescription descripción libre de hasta cinco líneas (se persiste como jsonb).
type ProductDescription struct {
	Line1 string `json:"line1,omitempty"`
	Line2 string `json:"line2,omitempty"`
	Line3 string `json:"line3,omitempty"`
	Line4 string `json:"line4,omitempty"`
	Line5 string `json:"line5,omitempty"`
}

// Product representa un producto del catálogo.
// Stock es un entero no negativo; los descuentos por venta recortan en 0.
type Product struct {
	ID            string
	Name          string
	BrandID       string
	Description   ProductDescription
	ImageURL      string
	ImagePublicID string
	Prices        TierPrices
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
