package services

import (
	"context"
	"time"

	"varsha-travels/internal/events"
	"varsha-travels/internal/models"
	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/pkg/logger"
)

// NoUpdate is the update body of resources that cannot be updated.
type NoUpdate struct{}

// Resource configures one CRUDService instance.
type Resource[D models.Document, C any, U any] struct {
	// Build validates a create body and returns the document to insert.
	Build func(in *C) (D, error)
	// Apply validates an update body against the stored document and
	// mutates it. Nil means the resource has no update operation.
	Apply func(doc D, in *U) error
	// AfterCreate runs once the document is stored.
	AfterCreate func(ctx context.Context, doc D)
}

// CRUDService implements list, get, create, update and delete for one
// resource type, including cleanup of replaced images.
type CRUDService[D models.Document, C any, U any] struct {
	repo      interfaces.Repository[D]
	resource  Resource[D, C, U]
	janitor   *ImageJanitor
	publisher events.Publisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewCRUDService[D models.Document, C any, U any](
	repo interfaces.Repository[D],
	resource Resource[D, C, U],
	janitor *ImageJanitor,
	publisher events.Publisher,
	log *logger.Logger,
) *CRUDService[D, C, U] {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &CRUDService[D, C, U]{
		repo:      repo,
		resource:  resource,
		janitor:   janitor,
		publisher: publisher,
		logger:    log.WithField("collection", repo.Collection()),
		now:       time.Now,
	}
}

func (s *CRUDService[D, C, U]) Name() string {
	return s.repo.Collection()
}

func (s *CRUDService[D, C, U]) List(ctx context.Context) ([]D, error) {
	return s.repo.List(ctx)
}

func (s *CRUDService[D, C, U]) Get(ctx context.Context, id string) (D, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CRUDService[D, C, U]) Create(ctx context.Context, in *C) (D, error) {
	doc, err := s.resource.Build(in)
	if err != nil {
		var zero D
		return zero, err
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		var zero D
		return zero, err
	}

	s.publish(ctx, models.EventCreated, doc.GetID().Hex(), doc)
	if s.resource.AfterCreate != nil {
		s.resource.AfterCreate(ctx, doc)
	}
	return doc, nil
}

// Update applies in to the stored document. The previous image is
// discarded only after the new state has been written.
func (s *CRUDService[D, C, U]) Update(ctx context.Context, id string, in *U) (D, error) {
	var zero D
	if s.resource.Apply == nil {
		return zero, ErrUpdateNotSupported
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	previousImage := imageID(doc)
	if err := s.resource.Apply(doc, in); err != nil {
		return zero, err
	}

	if err := s.repo.Replace(ctx, doc); err != nil {
		return zero, err
	}

	if previousImage != "" && previousImage != imageID(doc) {
		s.janitor.Discard(previousImage)
	}

	s.publish(ctx, models.EventUpdated, doc.GetID().Hex(), doc)
	return doc, nil
}

func (s *CRUDService[D, C, U]) Delete(ctx context.Context, id string) error {
	doc, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.janitor.Discard(imageID(doc))
	s.publish(ctx, models.EventDeleted, doc.GetID().Hex(), nil)
	return nil
}

func (s *CRUDService[D, C, U]) publish(ctx context.Context, action models.EventAction, id string, payload interface{}) {
	event := models.ResourceEvent{
		Resource: s.repo.Collection(),
		Action:   action,
		ID:       id,
		At:       s.now().UTC(),
	}
	if payload != nil {
		event.Payload = payload
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).Warn("failed to publish event")
	}
}

func imageID(doc interface{}) string {
	if owner, ok := doc.(models.ImageOwner); ok {
		return owner.ImageID()
	}
	return ""
}
