package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client            *mongo.Client
	ProductCollection *mongo.Collection
)

// Connect opens the MongoDB connection for the catalog source. It is only
// called when CATALOG_SOURCE=mongo; the fixture catalog needs no database.
func Connect(ctx context.Context, uri string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}

	Client = client
	ProductCollection = client.Database("electrofusion").Collection("products")
	return nil
}

func Disconnect(ctx context.Context) {
	if Client != nil {
		_ = Client.Disconnect(ctx)
	}
}
