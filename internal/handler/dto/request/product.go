package request

import (
	"storefront-backend/internal/usecase/commands"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Stock       *int32           `json:"stock" binding:"omitempty,min=0"`
	Rating      *float64         `json:"rating" binding:"omitempty,min=0,max=5"`
	Reviews     *int32           `json:"reviews" binding:"omitempty,min=0"`
	Images      *[]string        `json:"images"`
	Image       *string          `json:"image"`
	ExtraImages *[]string        `json:"extra_images"`
	IsAvailable *bool            `json:"is_available"`
}

func (r *ProductRequest) ToInput() (commands.ProductInput, error) {
	var in commands.ProductInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.ProductInput{}, err
	}
	return in, nil
}
