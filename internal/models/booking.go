package models

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingStatuses lists every status in display order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

func (s BookingStatus) Valid() bool {
	for _, st := range BookingStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Booking references destination and vehicle by label only.
type Booking struct {
	Base            `bson:",inline"`
	FullName        string        `json:"fullName" bson:"fullName" validate:"required,max=200"`
	Email           string        `json:"email" bson:"email" validate:"required,max=254"`
	Phone           string        `json:"phone" bson:"phone" validate:"required,max=50"`
	Destination     string        `json:"destination" bson:"destination" validate:"required,max=200"`
	Vehicle         string        `json:"vehicle" bson:"vehicle" validate:"required,max=200"`
	PickupDate      string        `json:"pickupDate" bson:"pickupDate" validate:"required,max=100"`
	DropoffDate     string        `json:"dropoffDate" bson:"dropoffDate" validate:"required,max=100"`
	Passengers      string        `json:"passengers" bson:"passengers" validate:"required,max=50"`
	SpecialRequests string        `json:"specialRequests" bson:"specialRequests" validate:"max=2000"`
	Status          BookingStatus `json:"status" bson:"status" validate:"booking_status"`
}

type BookingInput struct {
	FullName        LooseString `json:"fullName"`
	Email           LooseString `json:"email"`
	Phone           LooseString `json:"phone"`
	Destination     LooseString `json:"destination"`
	Vehicle         LooseString `json:"vehicle"`
	PickupDate      LooseString `json:"pickupDate"`
	DropoffDate     LooseString `json:"dropoffDate"`
	Passengers      LooseString `json:"passengers"`
	SpecialRequests LooseString `json:"specialRequests"`
}

type BookingStatusUpdate struct {
	Status Optional[string] `json:"status"`
}
