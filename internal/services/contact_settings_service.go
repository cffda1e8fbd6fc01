package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"varsha-travels/internal/models"
	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/internal/validators"
	"varsha-travels/pkg/logger"
)

// Locker is satisfied by the redis cache.
type Locker interface {
	Lock(ctx context.Context, key, owner string, ttl time.Duration) (release func(), ok bool, err error)
	Key(parts ...string) string
}

// ContactSettingsService serves the singleton settings document, creating
// it from the default payload on first read.
type ContactSettingsService struct {
	*CRUDService[*models.ContactSettings, models.ContactSettings, models.ContactSettingsPatch]
	repo      interfaces.Repository[*models.ContactSettings]
	locker    Locker
	lockTTL   time.Duration
	pollEvery time.Duration
	logger    *logger.Logger
}

func NewContactSettingsService(repo interfaces.Repository[*models.ContactSettings], locker Locker, lockTTL time.Duration, deps Deps) *ContactSettingsService {
	crud := NewCRUDService(repo, Resource[*models.ContactSettings, models.ContactSettings, models.ContactSettingsPatch]{
		Build: func(in *models.ContactSettings) (*models.ContactSettings, error) {
			return in, nil
		},
		Apply: validators.ApplyContactSettingsPatch,
	}, deps.Janitor, deps.Publisher, deps.Logger)

	if lockTTL <= 0 {
		lockTTL = 10 * time.Second
	}
	log := deps.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &ContactSettingsService{
		CRUDService: crud,
		repo:        repo,
		locker:      locker,
		lockTTL:     lockTTL,
		pollEvery:   100 * time.Millisecond,
		logger:      log,
	}
}

// Current returns the settings document. Without a locker two concurrent
// first reads may each create one; the oldest is always served.
func (s *ContactSettingsService) Current(ctx context.Context) (*models.ContactSettings, error) {
	settings, err := s.repo.First(ctx)
	if !errors.Is(err, interfaces.ErrNotFound) {
		return settings, err
	}

	if s.locker == nil {
		return s.bootstrap(ctx)
	}

	release, ok, err := s.locker.Lock(ctx, s.locker.Key("lock", "contact-settings"), uuid.NewString(), s.lockTTL)
	if err != nil {
		s.logger.WithError(err).Warn("settings lock unavailable, creating without it")
		return s.bootstrap(ctx)
	}
	if ok {
		defer release()
		// another instance may have finished between the read and the lock
		settings, err = s.repo.First(ctx)
		if !errors.Is(err, interfaces.ErrNotFound) {
			return settings, err
		}
		return s.bootstrap(ctx)
	}

	return s.waitForBootstrap(ctx)
}

func (s *ContactSettingsService) bootstrap(ctx context.Context) (*models.ContactSettings, error) {
	settings, err := s.Create(ctx, models.DefaultContactSettings())
	if err != nil {
		return nil, err
	}
	s.logger.WithField("id", settings.ID.Hex()).Info("created default contact settings")
	return settings, nil
}

// waitForBootstrap polls until the lock holder has created the document.
// If the lock expires first the settings are created here.
func (s *ContactSettingsService) waitForBootstrap(ctx context.Context) (*models.ContactSettings, error) {
	deadline := time.Now().Add(s.lockTTL)
	ticker := time.NewTicker(s.pollEvery)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		settings, err := s.repo.First(ctx)
		if !errors.Is(err, interfaces.ErrNotFound) {
			return settings, err
		}
	}
	return s.bootstrap(ctx)
}
