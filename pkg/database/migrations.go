package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationsCollection = "migrations"

type Migration struct {
	Version     int
	Description string
	Up          func(ctx context.Context, db *mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
	logf       func(format string, args ...interface{})
}

// NewMigrator runs migrations in slice order; versions must increase.
func NewMigrator(db *mongo.Database, migrations []Migration, logf func(string, ...interface{})) *Migrator {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Migrator{
		db:         db,
		migrations: migrations,
		logf:       logf,
	}
}

func (m *Migrator) Up(ctx context.Context) error {
	currentVersion, err := m.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}
		m.logf("Running migration %d: %s", migration.Version, migration.Description)

		if err := migration.Up(ctx, m.db); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		if err := m.updateVersion(ctx, migration.Version); err != nil {
			return fmt.Errorf("failed to update migration version: %w", err)
		}
	}

	return nil
}

func (m *Migrator) CurrentVersion(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection(migrationsCollection).FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(ctx context.Context, version int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.db.Collection(migrationsCollection).UpdateOne(ctx,
		bson.D{},
		bson.M{"$set": bson.M{"version": version, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

// CreatedAtIndex is the descending creation-time index every list query sorts by.
func CreatedAtIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	}
}
