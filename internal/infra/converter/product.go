package converter

import (
	"encoding/json"
	"fmt"

	"storefront-backend/internal/domain/product"
	sqlc "storefront-backend/internal/infra/sqlc/generated"
	"storefront-backend/internal/pkg/pgconv"
)

func ProductFromRow(row sqlc.Products) (*product.Product, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, fmt.Errorf("product %d price: %w", row.ID, err)
	}
	return product.ReconstructProduct(
		row.ID,
		row.Name,
		row.Description,
		price,
		row.Category,
		row.Stock,
		row.Rating,
		row.Reviews,
		row.Image,
		DecodeGallery(row.ExtraImages),
		row.IsAvailable,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ProductToCreateParams(p *product.Product) (sqlc.CreateProductParams, error) {
	gallery, err := encodeGallery(p.Gallery())
	if err != nil {
		return sqlc.CreateProductParams{}, err
	}
	return sqlc.CreateProductParams{
		Name:        p.Name(),
		Description: p.Description(),
		Price:       pgconv.DecimalToNumeric(p.Price()),
		Image:       p.Cover(),
		ExtraImages: gallery,
		Category:    p.Category(),
		Stock:       p.Stock(),
		Rating:      p.Rating(),
		Reviews:     p.Reviews(),
		IsAvailable: p.IsAvailable(),
	}, nil
}

func ProductToUpdateParams(p *product.Product) (sqlc.UpdateProductParams, error) {
	c, err := ProductToCreateParams(p)
	if err != nil {
		return sqlc.UpdateProductParams{}, err
	}
	return sqlc.UpdateProductParams{
		ID:          p.ID(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Image:       c.Image,
		ExtraImages: c.ExtraImages,
		Category:    c.Category,
		Stock:       c.Stock,
		Rating:      c.Rating,
		Reviews:     c.Reviews,
		IsAvailable: c.IsAvailable,
	}, nil
}

// DecodeGallery reads the extra_images column. Unreadable values yield an
// empty gallery rather than failing the whole product.
func DecodeGallery(raw []byte) []string {
	var gallery []string
	if len(raw) == 0 || json.Unmarshal(raw, &gallery) != nil {
		return []string{}
	}
	if gallery == nil {
		return []string{}
	}
	return gallery
}

func encodeGallery(gallery []string) ([]byte, error) {
	if gallery == nil {
		gallery = []string{}
	}
	return json.Marshal(gallery)
}
