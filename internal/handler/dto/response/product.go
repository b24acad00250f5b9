package response

import (
	"time"

	"storefront-backend/internal/usecase/queries"
)

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       Money     `json:"price"`
	Category    string    `json:"category"`
	Stock       int32     `json:"stock"`
	Rating      float64   `json:"rating"`
	Reviews     int32     `json:"reviews"`
	Images      []string  `json:"images"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) (*ProductResponse, error) {
	var res ProductResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	return &res, nil
}

func FromProductList(views []*queries.ProductView) ([]*ProductResponse, error) {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		p, err := FromProductView(v)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

type ProductEnvelope struct {
	Success bool             `json:"success"`
	Product *ProductResponse `json:"product"`
}
