// Package catalog serves the read-only product list. Nothing in the rest of
// the system depends on how the catalog is sourced; the default is the
// shipped fixture set, with an optional mongo-backed source.
package catalog

import (
	"context"
	"errors"

	"electrofusion/models"
)

// ErrNotFound is returned when no product has the requested id.
var ErrNotFound = errors.New("catalog: product not found")

// Category is display metadata for a product group.
type Category struct {
	ID   string `json:"id" bson:"categoryid"`
	Name string `json:"name" bson:"name"`
	Icon string `json:"icon" bson:"icon"`
}

type Provider interface {
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id string) (models.Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

// Static serves the fixture catalog from memory.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Products(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(sampleProducts))
	copy(out, sampleProducts)
	return out, nil
}

func (s *Static) Product(_ context.Context, id string) (models.Product, error) {
	for _, p := range sampleProducts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *Static) Categories(_ context.Context) ([]Category, error) {
	out := make([]Category, len(sampleCategories))
	copy(out, sampleCategories)
	return out, nil
}
