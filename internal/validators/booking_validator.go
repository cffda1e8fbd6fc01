package validators

import (
	"strings"

	"varsha-travels/internal/models"
)

const (
	bookingRequired = "All required fields must be provided"
	invalidStatus   = "Invalid status"
)

func NewBooking(in *models.BookingInput) (*models.Booking, error) {
	b := &models.Booking{
		FullName:        strings.TrimSpace(in.FullName.String()),
		Email:           strings.TrimSpace(in.Email.String()),
		Phone:           strings.TrimSpace(in.Phone.String()),
		Destination:     strings.TrimSpace(in.Destination.String()),
		Vehicle:         strings.TrimSpace(in.Vehicle.String()),
		PickupDate:      strings.TrimSpace(in.PickupDate.String()),
		DropoffDate:     strings.TrimSpace(in.DropoffDate.String()),
		Passengers:      strings.TrimSpace(in.Passengers.String()),
		SpecialRequests: strings.TrimSpace(in.SpecialRequests.String()),
		Status:          models.BookingStatusPending,
	}
	if err := check(b, bookingRequired); err != nil {
		return nil, err
	}
	return b, nil
}

// ApplyBookingStatus sets the status, leaving b untouched when the value is
// missing or not one of the known statuses.
func ApplyBookingStatus(b *models.Booking, u *models.BookingStatusUpdate) error {
	if !u.Status.Present() {
		return NewValidationError("status", invalidStatus)
	}
	status := models.BookingStatus(u.Status.Value)
	if !status.Valid() {
		return &ValidationError{Field: "status", Tag: "booking_status", Value: u.Status.Value, Message: invalidStatus}
	}
	b.Status = status
	return nil
}
