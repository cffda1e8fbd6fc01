package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"varsha-travels/internal/models"
	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/pkg/sms"
	"varsha-travels/pkg/storage"
)

// memoryRepository keeps documents in a map, newest first on List.
type memoryRepository[D models.Document] struct {
	mu         sync.Mutex
	name       string
	docs       map[primitive.ObjectID]D
	order      []primitive.ObjectID
	clock      time.Time
	createHook func()
}

func newMemoryRepository[D models.Document](name string) *memoryRepository[D] {
	return &memoryRepository[D]{
		name:  name,
		docs:  make(map[primitive.ObjectID]D),
		clock: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *memoryRepository[D]) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memoryRepository[D]) Create(_ context.Context, doc D) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createHook != nil {
		r.createHook()
	}
	doc.SetID(primitive.NewObjectID())
	doc.Stamp(r.tick())
	r.docs[doc.GetID()] = doc
	r.order = append(r.order, doc.GetID())
	return nil
}

func (r *memoryRepository[D]) GetByID(_ context.Context, id string) (D, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero D
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, interfaces.ErrNotFound
	}
	doc, ok := r.docs[oid]
	if !ok {
		return zero, interfaces.ErrNotFound
	}
	return doc, nil
}

func (r *memoryRepository[D]) sorted() []D {
	out := make([]D, 0, len(r.docs))
	for i := len(r.order) - 1; i >= 0; i-- {
		if d, ok := r.docs[r.order[i]]; ok {
			out = append(out, d)
		}
	}
	return out
}

func (r *memoryRepository[D]) List(context.Context) ([]D, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(), nil
}

func (r *memoryRepository[D]) First(context.Context) (D, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero D
	docs := r.sorted()
	if len(docs) == 0 {
		return zero, interfaces.ErrNotFound
	}
	return docs[len(docs)-1], nil
}

func (r *memoryRepository[D]) Replace(_ context.Context, doc D) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.GetID()]; !ok {
		return interfaces.ErrNotFound
	}
	doc.Stamp(r.tick())
	r.docs[doc.GetID()] = doc
	return nil
}

func (r *memoryRepository[D]) Delete(_ context.Context, id string) (D, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero D
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, interfaces.ErrNotFound
	}
	doc, ok := r.docs[oid]
	if !ok {
		return zero, interfaces.ErrNotFound
	}
	delete(r.docs, oid)
	return doc, nil
}

func (r *memoryRepository[D]) Collection() string { return r.name }

func (r *memoryRepository[D]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResponse), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) Name() string { return "mock" }

type MockSMS struct {
	mock.Mock
}

func (m *MockSMS) SendSMS(ctx context.Context, request *sms.SMSRequest) (*sms.SMSResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sms.SMSResponse), args.Error(1)
}

func (m *MockSMS) SendBulkSMS(ctx context.Context, requests []*sms.SMSRequest) ([]*sms.SMSResponse, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sms.SMSResponse), args.Error(1)
}

func (m *MockSMS) Name() string { return "mock" }

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.ResourceEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e models.ResourceEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) actions() []models.EventAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.EventAction, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}
