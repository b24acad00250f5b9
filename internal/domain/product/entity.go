package product

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCategory = "General"

var (
	ErrNameRequired   = errors.New("product name is required")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrNegativeStock  = errors.New("stock cannot be negative")
	ErrRatingOutRange = errors.New("rating must be between 0 and 5")
	ErrNegativeCount  = errors.New("review count cannot be negative")
)

var maxRating = 5.0

type Product struct {
	id          int64
	name        string
	description string
	price       decimal.Decimal
	category    string
	stock       int32
	rating      float64
	reviews     int32
	cover       string
	gallery     []string
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Params struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Stock       int32
	Rating      float64
	Reviews     int32
	Images      []string
	Available   bool
}

func NewProduct(p Params) (*Product, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if p.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if p.Stock < 0 {
		return nil, ErrNegativeStock
	}
	if p.Rating < 0 || p.Rating > maxRating {
		return nil, ErrRatingOutRange
	}
	if p.Reviews < 0 {
		return nil, ErrNegativeCount
	}
	category := strings.TrimSpace(p.Category)
	if category == "" {
		category = DefaultCategory
	}
	cover, gallery := SplitImages(p.Images)

	return &Product{
		name:        name,
		description: strings.TrimSpace(p.Description),
		price:       p.Price,
		category:    category,
		stock:       p.Stock,
		rating:      p.Rating,
		reviews:     p.Reviews,
		cover:       cover,
		gallery:     gallery,
		available:   p.Available,
	}, nil
}

func ReconstructProduct(
	id int64,
	name, description string,
	price decimal.Decimal,
	category string,
	stock int32,
	rating float64,
	reviews int32,
	cover string,
	gallery []string,
	available bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		category:    category,
		stock:       stock,
		rating:      rating,
		reviews:     reviews,
		cover:       cover,
		gallery:     gallery,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) Params() Params {
	return Params{
		Name:        p.name,
		Description: p.description,
		Price:       p.price,
		Category:    p.category,
		Stock:       p.stock,
		Rating:      p.rating,
		Reviews:     p.reviews,
		Images:      p.Images(),
		Available:   p.available,
	}
}

// Revise validates np as a full replacement of the editable fields.
func (p *Product) Revise(np Params) (*Product, error) {
	next, err := NewProduct(np)
	if err != nil {
		return nil, err
	}
	next.id = p.id
	next.createdAt = p.createdAt
	return next, nil
}

// Images returns the cover followed by the gallery.
func (p *Product) Images() []string {
	return JoinImages(p.cover, p.gallery)
}

func (p *Product) ID() int64              { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Category() string       { return p.category }
func (p *Product) Stock() int32           { return p.stock }
func (p *Product) Rating() float64        { return p.rating }
func (p *Product) Reviews() int32         { return p.reviews }
func (p *Product) Cover() string          { return p.cover }
func (p *Product) Gallery() []string      { return p.gallery }
func (p *Product) IsAvailable() bool      { return p.available }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
