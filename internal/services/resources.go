package services

import (
	"context"

	"varsha-travels/internal/events"
	"varsha-travels/internal/models"
	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/internal/validators"
	"varsha-travels/pkg/logger"
)

type (
	DestinationService    = CRUDService[*models.Destination, models.DestinationInput, models.DestinationPatch]
	VehicleService        = CRUDService[*models.Vehicle, models.VehicleInput, models.VehiclePatch]
	ReviewService         = CRUDService[*models.Review, models.ReviewInput, NoUpdate]
	BookingService        = CRUDService[*models.Booking, models.BookingInput, models.BookingStatusUpdate]
	ContactMessageService = CRUDService[*models.ContactMessage, models.ContactMessageInput, models.ContactMessageUpdate]
)

// Deps are shared by every resource service.
type Deps struct {
	Janitor   *ImageJanitor
	Publisher events.Publisher
	Notifier  *Notifier
	Logger    *logger.Logger
}

func NewDestinationService(repo interfaces.Repository[*models.Destination], deps Deps) *DestinationService {
	return NewCRUDService(repo, Resource[*models.Destination, models.DestinationInput, models.DestinationPatch]{
		Build: validators.NewDestination,
		Apply: validators.ApplyDestinationPatch,
	}, deps.Janitor, deps.Publisher, deps.Logger)
}

func NewVehicleService(repo interfaces.Repository[*models.Vehicle], deps Deps) *VehicleService {
	return NewCRUDService(repo, Resource[*models.Vehicle, models.VehicleInput, models.VehiclePatch]{
		Build: validators.NewVehicle,
		Apply: validators.ApplyVehiclePatch,
	}, deps.Janitor, deps.Publisher, deps.Logger)
}

// NewReviewService builds a create, list and delete only service.
func NewReviewService(repo interfaces.Repository[*models.Review], deps Deps) *ReviewService {
	return NewCRUDService(repo, Resource[*models.Review, models.ReviewInput, NoUpdate]{
		Build: validators.NewReview,
	}, deps.Janitor, deps.Publisher, deps.Logger)
}

func NewBookingService(repo interfaces.Repository[*models.Booking], deps Deps) *BookingService {
	return NewCRUDService(repo, Resource[*models.Booking, models.BookingInput, models.BookingStatusUpdate]{
		Build: validators.NewBooking,
		Apply: validators.ApplyBookingStatus,
		AfterCreate: func(ctx context.Context, b *models.Booking) {
			deps.Notifier.BookingReceived(b)
		},
	}, deps.Janitor, deps.Publisher, deps.Logger)
}

func NewContactMessageService(repo interfaces.Repository[*models.ContactMessage], deps Deps) *ContactMessageService {
	return NewCRUDService(repo, Resource[*models.ContactMessage, models.ContactMessageInput, models.ContactMessageUpdate]{
		Build: validators.NewContactMessage,
		Apply: validators.ApplyMessageUpdate,
		AfterCreate: func(ctx context.Context, m *models.ContactMessage) {
			deps.Notifier.MessageReceived(m)
		},
	}, deps.Janitor, deps.Publisher, deps.Logger)
}
