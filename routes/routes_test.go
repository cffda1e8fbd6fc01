package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	handlers "varsha-travels/internal/handlers/shared"
	"varsha-travels/internal/models"
	"varsha-travels/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubService[D any, C any, U any] struct {
	name string
}

func (s stubService[D, C, U]) Name() string { return s.name }

func (s stubService[D, C, U]) List(context.Context) ([]D, error) { return []D{}, nil }

func (s stubService[D, C, U]) Get(context.Context, string) (D, error) {
	var zero D
	return zero, services.ErrNotFound
}

func (s stubService[D, C, U]) Create(context.Context, *C) (D, error) {
	var zero D
	return zero, nil
}

func (s stubService[D, C, U]) Update(context.Context, string, *U) (D, error) {
	var zero D
	return zero, nil
}

func (s stubService[D, C, U]) Delete(context.Context, string) error { return nil }

type stubSettings struct{}

func (stubSettings) Current(context.Context) (*models.ContactSettings, error) {
	return models.DefaultContactSettings(), nil
}

func (stubSettings) Update(context.Context, string, *models.ContactSettingsPatch) (*models.ContactSettings, error) {
	return models.DefaultContactSettings(), nil
}

func newTestRouter(admin gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := &Handlers{
		Destinations: handlers.NewResourceHandler[*models.Destination, models.DestinationInput, models.DestinationPatch](
			stubService[*models.Destination, models.DestinationInput, models.DestinationPatch]{"destinations"}, handlers.DestinationMessages, nil),
		Vehicles: handlers.NewResourceHandler[*models.Vehicle, models.VehicleInput, models.VehiclePatch](
			stubService[*models.Vehicle, models.VehicleInput, models.VehiclePatch]{"vehicles"}, handlers.VehicleMessages, nil),
		Reviews: handlers.NewResourceHandler[*models.Review, models.ReviewInput, services.NoUpdate](
			stubService[*models.Review, models.ReviewInput, services.NoUpdate]{"reviews"}, handlers.ReviewMessages, nil),
		Bookings: handlers.NewResourceHandler[*models.Booking, models.BookingInput, models.BookingStatusUpdate](
			stubService[*models.Booking, models.BookingInput, models.BookingStatusUpdate]{"bookings"}, handlers.BookingMessages, nil),
		ContactMessages: handlers.NewResourceHandler[*models.ContactMessage, models.ContactMessageInput, models.ContactMessageUpdate](
			stubService[*models.ContactMessage, models.ContactMessageInput, models.ContactMessageUpdate]{"contactmessages"}, handlers.ContactMessages, nil),
		ContactSettings: handlers.NewContactSettingsHandler(stubSettings{}, nil),
		Auth:            handlers.NewAuthHandler(nil, nil),
		Upload:          handlers.NewUploadHandler(nil, 0, nil),
	}

	SetupRoutes(r, h, admin)
	return r
}

func denyAll(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
}

func TestSetupRoutes_Registered(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) { c.Next() })

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /api/health",
		"GET /api/destinations",
		"GET /api/destinations/:id",
		"POST /api/destinations",
		"PUT /api/destinations/:id",
		"DELETE /api/destinations/:id",
		"GET /api/vehicles",
		"PUT /api/vehicles/:id",
		"GET /api/reviews",
		"POST /api/reviews",
		"DELETE /api/reviews/:id",
		"GET /api/bookings/:id",
		"PUT /api/bookings/:id",
		"POST /api/contact",
		"PUT /api/contact/:id",
		"GET /api/contact-settings",
		"PUT /api/contact-settings/:id",
		"POST /api/admin/login",
		"POST /api/upload",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}

	assert.False(t, registered["PUT /api/reviews/:id"], "reviews must not be editable")
	assert.False(t, registered["GET /api/admin/events"], "events route needs a handler")
	assert.False(t, registered["GET /api/health/ready"], "readiness route needs a handler")
}

func TestSetupRoutes_AdminGuard(t *testing.T) {
	r := newTestRouter(denyAll)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/destinations", http.StatusOK},
		{http.MethodGet, "/api/contact-settings", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/bookings", http.StatusUnauthorized},
		{http.MethodGet, "/api/contact", http.StatusUnauthorized},
		{http.MethodDelete, "/api/destinations/abc", http.StatusUnauthorized},
		{http.MethodPut, "/api/contact-settings/abc", http.StatusUnauthorized},
		{http.MethodPost, "/api/upload", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
