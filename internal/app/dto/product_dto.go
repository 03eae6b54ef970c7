package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDto carries caller supplied product data for create and update
type ProductDto struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=1024"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
}

// InfoProductDto is the externally visible projection of a product
type InfoProductDto struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// MarshalJSON writes the price as a JSON number keeping the scale it was
// given with, so 1000.00 stays 1000.00 instead of the trimmed string "1000".
func (d InfoProductDto) MarshalJSON() ([]byte, error) {
	type info InfoProductDto
	return json.Marshal(struct {
		info
		Price json.Number `json:"price"`
	}{
		info:  info(d),
		Price: json.Number(formatPrice(d.Price)),
	})
}

func formatPrice(price decimal.Decimal) string {
	if exp := price.Exponent(); exp < 0 {
		return price.StringFixed(-exp)
	}
	return price.String()
}

// CreatedProductResponse is returned after a product has been created
type CreatedProductResponse struct {
	ID uuid.UUID `json:"id"`
}

func NewProductDto(name, description string, price decimal.Decimal) *ProductDto {
	return &ProductDto{
		Name:        name,
		Description: description,
		Price:       price,
	}
}
