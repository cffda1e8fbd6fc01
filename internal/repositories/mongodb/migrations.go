package mongodb

import (
	"context"

	"varsha-travels/internal/models"
	"varsha-travels/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Migrations returns the index migrations for every collection.
func Migrations() []database.Migration {
	return []database.Migration{
		{
			Version:     1,
			Description: "createdAt indexes for list ordering",
			Up: func(ctx context.Context, db *mongo.Database) error {
				for _, name := range []string{
					models.CollectionDestinations,
					models.CollectionVehicles,
					models.CollectionReviews,
					models.CollectionBookings,
					models.CollectionContactMessages,
					models.CollectionContactSettings,
				} {
					if _, err := db.Collection(name).Indexes().CreateOne(ctx, database.CreatedAtIndex()); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Version:     2,
			Description: "status indexes for bookings and messages",
			Up: func(ctx context.Context, db *mongo.Database) error {
				status := mongo.IndexModel{
					Keys:    bson.D{{Key: "status", Value: 1}},
					Options: options.Index().SetName("status"),
				}
				if _, err := db.Collection(models.CollectionBookings).Indexes().CreateOne(ctx, status); err != nil {
					return err
				}
				_, err := db.Collection(models.CollectionContactMessages).Indexes().CreateOne(ctx, status)
				return err
			},
		},
	}
}
