package catalog

import (
	"context"
	"errors"

	"electrofusion/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo reads the catalog from a products collection. Categories are
// derived from the products themselves when no categories collection is
// provisioned.
type Mongo struct {
	products *mongo.Collection
}

func NewMongo(products *mongo.Collection) *Mongo {
	return &Mongo{products: products}
}

func (m *Mongo) Products(ctx context.Context) ([]models.Product, error) {
	cursor, err := m.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		products = []models.Product{}
	}
	return products, nil
}

func (m *Mongo) Product(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := m.products.FindOne(ctx, bson.M{"productid": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

func (m *Mongo) Categories(ctx context.Context) ([]Category, error) {
	ids, err := m.products.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := []Category{{ID: "all", Name: "All Products", Icon: "📱"}}
	for _, v := range ids {
		id, ok := v.(string)
		if !ok {
			continue
		}
		categories = append(categories, Category{ID: id, Name: id, Icon: "📦"})
	}
	return categories, nil
}
