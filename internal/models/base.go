package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	CollectionDestinations    = "destinations"
	CollectionVehicles        = "vehicles"
	CollectionReviews         = "reviews"
	CollectionBookings        = "bookings"
	CollectionContactMessages = "contactmessages"
	CollectionContactSettings = "contactsettings"
)

// Document is implemented by every persisted resource through Base.
type Document interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	Stamp(now time.Time)
}

// ImageOwner is implemented by resources that reference a stored image.
type ImageOwner interface {
	ImageID() string
}

type Base struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (b *Base) GetID() primitive.ObjectID {
	return b.ID
}

func (b *Base) SetID(id primitive.ObjectID) {
	b.ID = id
}

// Stamp sets CreatedAt on first write and UpdatedAt on every write.
// Mongo stores milliseconds, so times are truncated to keep round trips equal.
func (b *Base) Stamp(now time.Time) {
	now = now.UTC().Truncate(time.Millisecond)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
