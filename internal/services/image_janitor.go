package services

import (
	"context"
	"sync"
	"time"

	"varsha-travels/pkg/logger"
	"varsha-travels/pkg/storage"
)

// ImageJanitor deletes replaced or orphaned images in the background.
// Deletion is best effort: it is never retried and its outcome never
// reaches the caller, so stale images may remain in storage.
type ImageJanitor struct {
	storage storage.StorageProvider
	timeout time.Duration
	logger  *logger.Logger
	wg      sync.WaitGroup
}

func NewImageJanitor(provider storage.StorageProvider, timeout time.Duration, log *logger.Logger) *ImageJanitor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Discard()
	}
	return &ImageJanitor{storage: provider, timeout: timeout, logger: log}
}

// Discard schedules deletion of key and returns immediately. Blank keys
// are ignored.
func (j *ImageJanitor) Discard(key string) {
	if j == nil || j.storage == nil || key == "" {
		return
	}

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		err := j.storage.Delete(ctx, key)
		j.logger.WithField("provider", j.storage.Name()).LogStorageEvent("delete", key, err)
	}()
}

// Wait blocks until every scheduled deletion has finished.
func (j *ImageJanitor) Wait() {
	if j != nil {
		j.wg.Wait()
	}
}
