package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"varsha-travels/internal/models"
)

type memoryLocker struct {
	mu    sync.Mutex
	held  map[string]string
	err   error
	calls int
}

func (l *memoryLocker) Key(parts ...string) string {
	key := "varsha"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func (l *memoryLocker) Lock(_ context.Context, key, owner string, _ time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.err != nil {
		return func() {}, false, l.err
	}
	if l.held == nil {
		l.held = make(map[string]string)
	}
	if _, taken := l.held[key]; taken {
		return func() {}, false, nil
	}
	l.held[key] = owner
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
	}, true, nil
}

func TestContactSettings_BootstrapsDefaults(t *testing.T) {
	repo := newMemoryRepository[*models.ContactSettings](models.CollectionContactSettings)
	svc := NewContactSettingsService(repo, nil, 0, Deps{})

	first, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Varsha Travels", first.BusinessName)
	assert.Equal(t, []string{"8778265650", "9435360401"}, first.Phones)
	assert.Equal(t, []string{"varshatravels06@gmail.com"}, first.Emails)
	assert.Equal(t, "State Bank of India", first.BankName)
	assert.Equal(t, "30231884313", first.AccountNumber)
	assert.Equal(t, "SBIN0000253", first.IFSC)

	second, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.count())
}

func TestContactSettings_LockSerializesBootstrap(t *testing.T) {
	repo := newMemoryRepository[*models.ContactSettings](models.CollectionContactSettings)
	locker := &memoryLocker{}
	svc := NewContactSettingsService(repo, locker, time.Second, Deps{})
	svc.pollEvery = 5 * time.Millisecond

	var wg sync.WaitGroup
	ids := make([]primitive.ObjectID, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := svc.Current(context.Background())
			if assert.NoError(t, err) {
				ids[i] = s.ID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, repo.count())
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestContactSettings_LockErrorFallsBack(t *testing.T) {
	repo := newMemoryRepository[*models.ContactSettings](models.CollectionContactSettings)
	svc := NewContactSettingsService(repo, &memoryLocker{err: errors.New("redis down")}, time.Second, Deps{})

	s, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Varsha Travels", s.BusinessName)
}

func TestContactSettings_QRReplacement(t *testing.T) {
	repo := newMemoryRepository[*models.ContactSettings](models.CollectionContactSettings)
	store := &MockStorage{}
	janitor := NewImageJanitor(store, time.Second, nil)
	svc := NewContactSettingsService(repo, nil, 0, Deps{Janitor: janitor})

	current, err := svc.Current(context.Background())
	require.NoError(t, err)

	// first QR: nothing to discard
	_, err = svc.Update(context.Background(), current.ID.Hex(), &models.ContactSettingsPatch{
		QRImageURL:      models.Some("https://img/qr1"),
		QRImagePublicID: models.Some("varsha_travels/qr1"),
	})
	require.NoError(t, err)
	janitor.Wait()
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	store.On("Delete", mock.Anything, "varsha_travels/qr1").Return(nil).Once()
	updated, err := svc.Update(context.Background(), current.ID.Hex(), &models.ContactSettingsPatch{
		QRImagePublicID: models.Some("varsha_travels/qr2"),
		Phones:          models.Some([]models.LooseString{" 111 ", ""}),
	})
	require.NoError(t, err)
	janitor.Wait()

	assert.Equal(t, "varsha_travels/qr2", updated.QRImagePublicID)
	assert.Equal(t, []string{"111"}, updated.Phones)
	store.AssertExpectations(t)

	_, err = svc.Update(context.Background(), primitive.NewObjectID().Hex(), &models.ContactSettingsPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}
