package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"varsha-travels/internal/models"
	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// lazyDatabase returns a database handle that never dials unless used.
func lazyDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1").SetServerSelectionTimeout(50*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("unused")
}

func TestMalformedIDIsNotFound(t *testing.T) {
	repo := NewRepository[*models.Destination](lazyDatabase(t), models.CollectionDestinations)

	_, err := repo.GetByID(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = repo.Delete(context.Background(), "1234")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	assert.Equal(t, models.CollectionDestinations, repo.Collection())
}

// integrationDatabase connects to MONGODB_TEST_URI and skips otherwise.
func integrationDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set, skipping integration test")
	}
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            uri,
		Database:       fmt.Sprintf("varsha_travels_test_%d", time.Now().UnixNano()),
		MaxPoolSize:    5,
		ConnectTimeout: 3 * time.Second,
	})
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
	}
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close()
	})
	return db.Database
}

func TestRepositoryRoundTrip_Integration(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := NewRepository[*models.Destination](db, models.CollectionDestinations, WithClock(func() time.Time { return clock }))

	first := &models.Destination{Name: "Ooty", State: "Tamil Nadu", Highlights: []string{"Toy Train"}}
	require.NoError(t, repo.Create(ctx, first))
	require.False(t, first.ID.IsZero())
	require.False(t, first.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, first.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, first.Name, got.Name)
	assert.Equal(t, first.Highlights, got.Highlights)
	assert.True(t, clock.Equal(got.CreatedAt))

	clock = clock.Add(time.Minute)
	second := &models.Destination{Name: "Munnar", State: "Kerala", Highlights: []string{}}
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Munnar", list[0].Name, "newest first")

	oldest, err := repo.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, oldest.ID)

	got.Details = "Queen of hills"
	require.NoError(t, repo.Replace(ctx, got))
	again, err := repo.GetByID(ctx, first.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Queen of hills", again.Details)
	assert.True(t, clock.Equal(again.UpdatedAt))
	assert.True(t, again.CreatedAt.Before(again.UpdatedAt), "createdAt survives replace")

	deleted, err := repo.Delete(ctx, first.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ooty", deleted.Name)

	_, err = repo.GetByID(ctx, first.ID.Hex())
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
	assert.ErrorIs(t, repo.Replace(ctx, got), interfaces.ErrNotFound)
}

func TestMigrations_Integration(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()

	migrator := database.NewMigrator(db, Migrations(), nil)
	require.NoError(t, migrator.Up(ctx))
	version, err := migrator.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	// second run is a no-op
	require.NoError(t, migrator.Up(ctx))
}
