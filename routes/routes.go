package routes

import (
	handlers "varsha-travels/internal/handlers/shared"
	"varsha-travels/internal/models"
	"varsha-travels/internal/services"

	"github.com/gin-gonic/gin"
)

type (
	DestinationHandler    = handlers.ResourceHandler[*models.Destination, models.DestinationInput, models.DestinationPatch]
	VehicleHandler        = handlers.ResourceHandler[*models.Vehicle, models.VehicleInput, models.VehiclePatch]
	ReviewHandler         = handlers.ResourceHandler[*models.Review, models.ReviewInput, services.NoUpdate]
	BookingHandler        = handlers.ResourceHandler[*models.Booking, models.BookingInput, models.BookingStatusUpdate]
	ContactMessageHandler = handlers.ResourceHandler[*models.ContactMessage, models.ContactMessageInput, models.ContactMessageUpdate]
)

// Handlers groups everything mounted under /api. Events and Ready are optional.
type Handlers struct {
	Destinations    *DestinationHandler
	Vehicles        *VehicleHandler
	Reviews         *ReviewHandler
	Bookings        *BookingHandler
	ContactMessages *ContactMessageHandler
	ContactSettings *handlers.ContactSettingsHandler
	Auth            *handlers.AuthHandler
	Upload          *handlers.UploadHandler
	Events          gin.HandlerFunc
	Ready           gin.HandlerFunc
}

// SetupRoutes mounts the API on r. admin guards every admin-only route;
// eventsAuth guards the websocket feed, which reads its token from the query.
func SetupRoutes(r *gin.Engine, h *Handlers, admin gin.HandlerFunc, eventsAuth ...gin.HandlerFunc) {
	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	api.GET("/health", handlers.Health)
	if h.Ready != nil {
		r.GET("/health/ready", h.Ready)
		api.GET("/health/ready", h.Ready)
	}

	SetupDestinationRoutes(api, h.Destinations, admin)
	SetupVehicleRoutes(api, h.Vehicles, admin)
	SetupReviewRoutes(api, h.Reviews, admin)
	SetupBookingRoutes(api, h.Bookings, admin)
	SetupContactRoutes(api, h.ContactMessages, h.ContactSettings, admin)
	SetupAdminRoutes(api, h.Auth, h.Upload, admin)

	if h.Events != nil {
		api.GET("/admin/events", append(eventsAuth, h.Events)...)
	}
}

// SetupDestinationRoutes sets up the public catalogue and its admin writes
func SetupDestinationRoutes(r *gin.RouterGroup, h *DestinationHandler, admin gin.HandlerFunc) {
	destinations := r.Group("/destinations")
	{
		destinations.GET("", h.List)
		destinations.GET("/:id", h.Get)
		destinations.POST("", admin, h.Create)
		destinations.PUT("/:id", admin, h.Update)
		destinations.DELETE("/:id", admin, h.Delete)
	}
}

func SetupVehicleRoutes(r *gin.RouterGroup, h *VehicleHandler, admin gin.HandlerFunc) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", h.List)
		vehicles.GET("/:id", h.Get)
		vehicles.POST("", admin, h.Create)
		vehicles.PUT("/:id", admin, h.Update)
		vehicles.DELETE("/:id", admin, h.Delete)
	}
}

// SetupReviewRoutes has no update route; reviews are create and delete only
func SetupReviewRoutes(r *gin.RouterGroup, h *ReviewHandler, admin gin.HandlerFunc) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("", h.Create)
		reviews.DELETE("/:id", admin, h.Delete)
	}
}

// SetupBookingRoutes lets visitors submit bookings; everything else is admin
func SetupBookingRoutes(r *gin.RouterGroup, h *BookingHandler, admin gin.HandlerFunc) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", admin, h.List)
		bookings.GET("/:id", admin, h.Get)
		bookings.PUT("/:id", admin, h.Update)
		bookings.DELETE("/:id", admin, h.Delete)
	}
}

func SetupContactRoutes(r *gin.RouterGroup, messages *ContactMessageHandler, settings *handlers.ContactSettingsHandler, admin gin.HandlerFunc) {
	contact := r.Group("/contact")
	{
		contact.POST("", messages.Create)
		contact.GET("", admin, messages.List)
		contact.GET("/:id", admin, messages.Get)
		contact.PUT("/:id", admin, messages.Update)
		contact.DELETE("/:id", admin, messages.Delete)
	}

	contactSettings := r.Group("/contact-settings")
	{
		contactSettings.GET("", settings.Get)
		contactSettings.PUT("/:id", admin, settings.Update)
	}
}

func SetupAdminRoutes(r *gin.RouterGroup, auth *handlers.AuthHandler, upload *handlers.UploadHandler, admin gin.HandlerFunc) {
	r.POST("/admin/login", auth.Login)
	r.POST("/upload", admin, upload.Upload)
}
