package validators

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"varsha-travels/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceRating(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want int
	}{
		{"omitted", nil, 5},
		{"zero collapses to default", float64(0), 5},
		{"above range", float64(6), 5},
		{"below range", float64(-3), 1},
		{"garbage string", "abc", 5},
		{"numeric string", " 4 ", 4},
		{"blank string", "", 5},
		{"rounds down", 2.2, 2},
		{"rounds half up", 3.5, 4},
		{"small positive rounds then clamps", 0.4, 1},
		{"true is one", true, 1},
		{"false is default", false, 5},
		{"infinity", "Infinity", 5},
		{"nan", math.NaN(), 5},
		{"object", map[string]interface{}{}, 5},
		{"json number", json.Number("3"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceRating(tt.in))
		})
	}
}

func TestCleanList(t *testing.T) {
	got := CleanList([]models.LooseString{"Toy Train", "", "  Lake ", "   "})
	assert.Equal(t, []string{"Toy Train", "Lake"}, got)
	assert.NotNil(t, CleanList(nil))
}

func TestNewDestinationTrimsAndDefaults(t *testing.T) {
	var in models.DestinationInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ooty ","state":" Tamil Nadu","highlights":["Toy Train","","  Lake "]}`), &in))

	d, err := NewDestination(&in)
	require.NoError(t, err)
	assert.Equal(t, "Ooty", d.Name)
	assert.Equal(t, "Tamil Nadu", d.State)
	assert.Equal(t, []string{"Toy Train", "Lake"}, d.Highlights)
	assert.Equal(t, "", d.ImageURL)
	assert.Equal(t, "", d.ImagePublicID)
	assert.Equal(t, "", d.Details)
}

func TestNewDestinationRequired(t *testing.T) {
	_, err := NewDestination(&models.DestinationInput{Name: "Ooty", State: "   "})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Name and state are required", err.Error())
}

func TestNewDestinationTooLong(t *testing.T) {
	_, err := NewDestination(&models.DestinationInput{Name: strings.Repeat("a", 201), State: "Kerala"})
	require.Error(t, err)
	assert.Equal(t, "name must be at most 200 characters", err.Error())
}

func TestApplyDestinationPatch(t *testing.T) {
	d := &models.Destination{Name: "Ooty", State: "Tamil Nadu", Details: "old", Highlights: []string{"a"}, ImageURL: "u1", ImagePublicID: "p1"}

	var p models.DestinationPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"  ","details":" new ","imageUrl":"","imagePublicId":"p2"}`), &p))

	require.NoError(t, ApplyDestinationPatch(d, &p))
	assert.Equal(t, "Ooty", d.Name, "blank name keeps stored value")
	assert.Equal(t, "Tamil Nadu", d.State, "absent state keeps stored value")
	assert.Equal(t, "new", d.Details)
	assert.Equal(t, []string{"a"}, d.Highlights)
	assert.Equal(t, "u1", d.ImageURL, "empty image url does not overwrite")
	assert.Equal(t, "p2", d.ImagePublicID)
}

func TestApplyDestinationPatchRejectsWithoutPartialUpdate(t *testing.T) {
	d := &models.Destination{Name: "Ooty", State: "Tamil Nadu", Details: "old", Highlights: []string{"a"}, ImageURL: "u1", ImagePublicID: "p1"}
	before := *d

	p := models.DestinationPatch{
		Name:       models.Some("Kodaikanal"),
		Details:    models.Some("new"),
		Highlights: models.Some([]models.LooseString{"lake", models.LooseString(strings.Repeat("x", 201))}),
	}
	err := ApplyDestinationPatch(d, &p)
	require.Error(t, err)
	assert.Equal(t, before, *d, "failed patch leaves the destination untouched")
}

func TestApplyVehiclePatchRejectsWithoutPartialUpdate(t *testing.T) {
	v := &models.Vehicle{Name: "Innova", ImageURL: "u1", ImagePublicID: "p1"}
	before := *v

	p := models.VehiclePatch{
		Name:     models.Some(strings.Repeat("n", 201)),
		ImageURL: models.Some("u2"),
	}
	require.Error(t, ApplyVehiclePatch(v, &p))
	assert.Equal(t, before, *v)

	require.NoError(t, ApplyVehiclePatch(v, &models.VehiclePatch{ImageURL: models.Some("u2")}))
	assert.Equal(t, "u2", v.ImageURL)
	assert.Equal(t, "Innova", v.Name)
}

func TestNewVehicleRequiresImage(t *testing.T) {
	_, err := NewVehicle(&models.VehicleInput{Name: "Innova"})
	require.Error(t, err)
	assert.Equal(t, "Name, imageUrl and imagePublicId are required", err.Error())

	v, err := NewVehicle(&models.VehicleInput{Name: " Innova ", ImageURL: "https://img", ImagePublicID: "varsha_travels/x"})
	require.NoError(t, err)
	assert.Equal(t, "Innova", v.Name)
}

func TestNewReview(t *testing.T) {
	_, err := NewReview(&models.ReviewInput{Name: "Asha"})
	require.Error(t, err)
	assert.Equal(t, "Name and content are required", err.Error())

	_, err = NewReview(&models.ReviewInput{Name: "Asha", Content: "Great", MediaType: "gif"})
	require.Error(t, err)
	assert.Equal(t, "Invalid media type", err.Error())

	r, err := NewReview(&models.ReviewInput{Name: " Asha", Content: "Great trip ", Rating: "abc", MediaType: "video", Date: " Jan 2024 "})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "Great trip", r.Content)
	assert.Equal(t, models.MediaTypeVideo, r.MediaType)
	assert.Equal(t, "Jan 2024", r.Date)
}

func TestNewBooking(t *testing.T) {
	var in models.BookingInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"fullName":" Ravi ","email":"ravi@example.com","phone":"98765","destination":"Ooty",
		"vehicle":"Innova","pickupDate":"2026-01-01","dropoffDate":"2026-01-03","passengers":4}`), &in))

	b, err := NewBooking(&in)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", b.FullName)
	assert.Equal(t, "4", b.Passengers)
	assert.Equal(t, "", b.SpecialRequests)
	assert.Equal(t, models.BookingStatusPending, b.Status)

	in.Vehicle = ""
	_, err = NewBooking(&in)
	require.Error(t, err)
	assert.Equal(t, "All required fields must be provided", err.Error())
}

func TestApplyBookingStatus(t *testing.T) {
	b := &models.Booking{Status: models.BookingStatusPending}

	err := ApplyBookingStatus(b, &models.BookingStatusUpdate{Status: models.Some("archived")})
	require.Error(t, err)
	assert.Equal(t, "Invalid status", err.Error())
	assert.Equal(t, models.BookingStatusPending, b.Status)

	err = ApplyBookingStatus(b, &models.BookingStatusUpdate{})
	assert.Error(t, err)

	require.NoError(t, ApplyBookingStatus(b, &models.BookingStatusUpdate{Status: models.Some("confirmed")}))
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
}

func TestContactMessage(t *testing.T) {
	m, err := NewContactMessage(&models.ContactMessageInput{Name: "A", Email: "a@b.c", Subject: "Hi", Message: " hello "})
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusUnread, m.Status)
	assert.False(t, m.IsStarred)
	assert.Equal(t, "", m.Phone)
	assert.Equal(t, "hello", m.Message)

	_, err = NewContactMessage(&models.ContactMessageInput{Name: "A", Email: "a@b.c", Message: "x"})
	assert.EqualError(t, err, "Name, email, subject and message are required")
}

func TestApplyMessageUpdate(t *testing.T) {
	m := &models.ContactMessage{Status: models.MessageStatusUnread}

	require.NoError(t, ApplyMessageUpdate(m, &models.ContactMessageUpdate{IsStarred: models.Some(true)}))
	assert.True(t, m.IsStarred)
	assert.Equal(t, models.MessageStatusUnread, m.Status)

	require.NoError(t, ApplyMessageUpdate(m, &models.ContactMessageUpdate{Status: models.Some("read")}))
	assert.Equal(t, models.MessageStatusRead, m.Status)
	assert.True(t, m.IsStarred)

	err := ApplyMessageUpdate(m, &models.ContactMessageUpdate{Status: models.Some("spam"), IsStarred: models.Some(false)})
	assert.EqualError(t, err, "Invalid status")
	assert.True(t, m.IsStarred, "nothing applied on error")
}

func TestApplyContactSettingsPatch(t *testing.T) {
	s := models.DefaultContactSettings()
	s.QRImagePublicID = "qr1"

	var p models.ContactSettingsPatch
	require.NoError(t, json.Unmarshal([]byte(`{"businessName":"","phones":[" 1 ",""],"upiId":" new@upi ","qrImagePublicId":""}`), &p))

	require.NoError(t, ApplyContactSettingsPatch(s, &p))
	assert.Equal(t, "Varsha Travels", s.BusinessName)
	assert.Equal(t, []string{"1"}, s.Phones)
	assert.Equal(t, []string{"varshatravels06@gmail.com"}, s.Emails)
	assert.Equal(t, "new@upi", s.UPIID)
	assert.Equal(t, "State Bank of India", s.BankName, "absent keys are kept")
	assert.Equal(t, "qr1", s.QRImagePublicID)
}

func TestApplyContactSettingsPatchRejectsWithoutPartialUpdate(t *testing.T) {
	s := models.DefaultContactSettings()
	before := *s

	p := models.ContactSettingsPatch{
		UPIID:    models.Some("new@upi"),
		BankName: models.Some(strings.Repeat("b", 501)),
	}
	require.Error(t, ApplyContactSettingsPatch(s, &p))
	assert.Equal(t, before, *s)
}
