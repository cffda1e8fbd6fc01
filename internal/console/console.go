package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"varsha-travels/internal/models"
	"varsha-travels/internal/services"
)

// API is the part of pkg/client the console drives.
type API interface {
	Destinations(ctx context.Context) ([]models.Destination, error)
	CreateDestination(ctx context.Context, in models.DestinationInput) (*models.Destination, error)
	UpdateDestination(ctx context.Context, id string, patch models.DestinationPatch) (*models.Destination, error)
	DeleteDestination(ctx context.Context, id string) error
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, in models.VehicleInput) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, patch models.VehiclePatch) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	Reviews(ctx context.Context) ([]models.Review, error)
	DeleteReview(ctx context.Context, id string) error
	Bookings(ctx context.Context) ([]models.Booking, error)
	SetBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	Messages(ctx context.Context) ([]models.ContactMessage, error)
	UpdateMessage(ctx context.Context, id string, update models.ContactMessageUpdate) (*models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error
	ContactSettings(ctx context.Context) (*models.ContactSettings, error)
	UpdateContactSettings(ctx context.Context, id string, patch models.ContactSettingsPatch) (*models.ContactSettings, error)
	UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (*services.UploadResult, error)
}

// QRImage is a freshly uploaded payment QR code.
type QRImage struct {
	URL      string
	PublicID string
}

// ImageFile is an image picked from disk for upload.
type ImageFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// ErrVehicleImageRequired is returned before any API call when a vehicle
// would be created without an image.
var ErrVehicleImageRequired = errors.New("a vehicle image is required")

type Console struct {
	api API
}

func New(api API) *Console {
	return &Console{api: api}
}

type Dashboard struct {
	Reviews      ReviewStats
	Destinations int
	States       []string
}

func (c *Console) Dashboard(ctx context.Context) (*Dashboard, error) {
	reviews, err := c.api.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	destinations, err := c.api.Destinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load destinations: %w", err)
	}
	return &Dashboard{
		Reviews:      ComputeReviewStats(reviews),
		Destinations: len(destinations),
		States:       States(destinations),
	}, nil
}

func (c *Console) upload(ctx context.Context, img *ImageFile) (*services.UploadResult, error) {
	result, err := c.api.UploadImage(ctx, img.Name, img.ContentType, img.Body)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	return result, nil
}

// AddDestination uploads img when given, creates the destination and
// returns the list and state names with it added.
func (c *Console) AddDestination(ctx context.Context, ds []models.Destination, states []string, in models.DestinationInput, img *ImageFile) ([]models.Destination, []string, error) {
	if img != nil {
		result, err := c.upload(ctx, img)
		if err != nil {
			return ds, states, err
		}
		in.ImageURL = result.SecureURL
		in.ImagePublicID = result.PublicID
	}
	created, err := c.api.CreateDestination(ctx, in)
	if err != nil {
		return ds, states, err
	}
	return PrependDestination(ds, *created), AddState(states, created.State), nil
}

// EditDestination uploads img when given, saves the patch and returns the
// list with the server copy swapped in, plus the recomputed state names.
func (c *Console) EditDestination(ctx context.Context, ds []models.Destination, id string, patch models.DestinationPatch, img *ImageFile) ([]models.Destination, []string, error) {
	if img != nil {
		result, err := c.upload(ctx, img)
		if err != nil {
			return ds, States(ds), err
		}
		patch.ImageURL = models.Some(result.SecureURL)
		patch.ImagePublicID = models.Some(result.PublicID)
	}
	updated, err := c.api.UpdateDestination(ctx, id, patch)
	if err != nil {
		return ds, States(ds), err
	}
	out := replaceID(ds, *updated)
	return out, States(out), nil
}

// RemoveDestination deletes id and drops it from ds once the API agrees.
func (c *Console) RemoveDestination(ctx context.Context, ds []models.Destination, id string) ([]models.Destination, error) {
	if err := c.api.DeleteDestination(ctx, id); err != nil {
		return ds, err
	}
	return removeID(ds, id), nil
}

// AddVehicle uploads img, then creates the vehicle. Without img the input
// must already carry an uploaded image.
func (c *Console) AddVehicle(ctx context.Context, vs []models.Vehicle, in models.VehicleInput, img *ImageFile) ([]models.Vehicle, error) {
	if img == nil && (in.ImageURL == "" || in.ImagePublicID == "") {
		return vs, ErrVehicleImageRequired
	}
	if img != nil {
		result, err := c.upload(ctx, img)
		if err != nil {
			return vs, err
		}
		in.ImageURL = result.SecureURL
		in.ImagePublicID = result.PublicID
	}
	created, err := c.api.CreateVehicle(ctx, in)
	if err != nil {
		return vs, err
	}
	return append([]models.Vehicle{*created}, vs...), nil
}

// EditVehicle is EditDestination for vehicles. The server deletes the
// replaced image.
func (c *Console) EditVehicle(ctx context.Context, vs []models.Vehicle, id string, patch models.VehiclePatch, img *ImageFile) ([]models.Vehicle, error) {
	if img != nil {
		result, err := c.upload(ctx, img)
		if err != nil {
			return vs, err
		}
		patch.ImageURL = models.Some(result.SecureURL)
		patch.ImagePublicID = models.Some(result.PublicID)
	}
	updated, err := c.api.UpdateVehicle(ctx, id, patch)
	if err != nil {
		return vs, err
	}
	return replaceID(vs, *updated), nil
}

func (c *Console) RemoveVehicle(ctx context.Context, vs []models.Vehicle, id string) ([]models.Vehicle, error) {
	if err := c.api.DeleteVehicle(ctx, id); err != nil {
		return vs, err
	}
	return removeID(vs, id), nil
}

func (c *Console) RemoveBooking(ctx context.Context, bs []models.Booking, id string) ([]models.Booking, error) {
	if err := c.api.DeleteBooking(ctx, id); err != nil {
		return bs, err
	}
	return removeID(bs, id), nil
}

func (c *Console) RemoveMessage(ctx context.Context, ms []models.ContactMessage, id string) ([]models.ContactMessage, error) {
	if err := c.api.DeleteMessage(ctx, id); err != nil {
		return ms, err
	}
	return removeID(ms, id), nil
}

// DeleteReview removes the review from rs immediately and then asks the
// API. The returned list never contains id; err is for logging only.
func (c *Console) DeleteReview(ctx context.Context, rs []models.Review, id string) ([]models.Review, error) {
	remaining := RemoveReview(rs, id)
	return remaining, c.api.DeleteReview(ctx, id)
}

// OpenMessage marks an unread message as read and returns the message to
// display.
func (c *Console) OpenMessage(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	update, needed := OpenUpdate(m)
	if !needed {
		return m, nil
	}
	updated, err := c.api.UpdateMessage(ctx, m.ID.Hex(), update)
	if err != nil {
		return m, err
	}
	return *updated, nil
}

func (c *Console) ToggleStar(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	updated, err := c.api.UpdateMessage(ctx, m.ID.Hex(), ToggleStarUpdate(m))
	if err != nil {
		return m, err
	}
	return *updated, nil
}

func (c *Console) SetBookingStatus(ctx context.Context, id, raw string) (*models.Booking, error) {
	status, ok := ParseBookingStatus(raw)
	if !ok {
		return nil, fmt.Errorf("unknown booking status %q", raw)
	}
	return c.api.SetBookingStatus(ctx, id, status)
}

// SaveSettings uploads qr first when one was chosen, then saves the form.
// A failed upload leaves the settings untouched.
func (c *Console) SaveSettings(ctx context.Context, form *SettingsForm, qr *ImageFile) (*models.ContactSettings, error) {
	var uploaded *QRImage
	if qr != nil {
		result, err := c.api.UploadImage(ctx, qr.Name, qr.ContentType, qr.Body)
		if err != nil {
			return nil, fmt.Errorf("QR code upload failed: %w", err)
		}
		uploaded = &QRImage{URL: result.SecureURL, PublicID: result.PublicID}
	}
	return c.api.UpdateContactSettings(ctx, form.Settings.ID.Hex(), form.Patch(uploaded))
}
