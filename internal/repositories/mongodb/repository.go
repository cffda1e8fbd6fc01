package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"varsha-travels/internal/models"
	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type settings struct {
	cache   interfaces.CacheService
	listTTL time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

type Option func(*settings)

// WithListCache caches List results until the next write to the collection.
func WithListCache(cache interfaces.CacheService, ttl time.Duration) Option {
	return func(s *settings) {
		s.cache = cache
		s.listTTL = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

type repository[D models.Document] struct {
	collection *mongo.Collection
	settings
}

func NewRepository[D models.Document](db *mongo.Database, name string, opts ...Option) interfaces.Repository[D] {
	s := settings{now: time.Now, logger: logger.Discard()}
	for _, opt := range opts {
		opt(&s)
	}
	return &repository[D]{
		collection: db.Collection(name),
		settings:   s,
	}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func (r *repository[D]) Collection() string {
	return r.collection.Name()
}

func (r *repository[D]) Create(ctx context.Context, doc D) error {
	doc.SetID(primitive.NewObjectID())
	doc.Stamp(r.now())

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create %s document: %w", r.Collection(), err)
	}

	r.lists().invalidate(ctx)
	return nil
}

func (r *repository[D]) GetByID(ctx context.Context, id string) (D, error) {
	var doc D

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return doc, interfaces.ErrNotFound
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doc, interfaces.ErrNotFound
		}
		return doc, fmt.Errorf("failed to get %s document: %w", r.Collection(), err)
	}

	return doc, nil
}

func (r *repository[D]) List(ctx context.Context) ([]D, error) {
	lists := r.lists()
	gen := lists.generation(ctx)

	var cached []D
	if lists.load(ctx, gen, &cached) && cached != nil {
		return cached, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.Collection(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]D, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.Collection(), err)
	}

	lists.store(ctx, gen, docs)
	return docs, nil
}

func (r *repository[D]) First(ctx context.Context) (D, error) {
	var doc D

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doc, interfaces.ErrNotFound
		}
		return doc, fmt.Errorf("failed to get %s document: %w", r.Collection(), err)
	}

	return doc, nil
}

func (r *repository[D]) Replace(ctx context.Context, doc D) error {
	doc.Stamp(r.now())

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.GetID()}, doc)
	if err != nil {
		return fmt.Errorf("failed to update %s document: %w", r.Collection(), err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.lists().invalidate(ctx)
	return nil
}

func (r *repository[D]) Delete(ctx context.Context, id string) (D, error) {
	var doc D

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return doc, interfaces.ErrNotFound
	}

	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doc, interfaces.ErrNotFound
		}
		return doc, fmt.Errorf("failed to delete %s document: %w", r.Collection(), err)
	}

	r.lists().invalidate(ctx)
	return doc, nil
}

func (r *repository[D]) lists() listCache {
	return listCache{cache: r.cache, collection: r.Collection(), ttl: r.listTTL, logger: r.logger}
}
