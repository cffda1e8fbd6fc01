package utils

import "time"

// Application Constants
const (
	AppName    = "VarshaTravels"
	AppVersion = "1.0.0"

	// Authentication
	AdminRole             = "admin"
	DefaultAdminTokenTTL  = 12 * time.Hour
	GeneratedSecretLength = 48

	// File Upload
	MaxImageSize        = 5 * 1024 * 1024 // 5MB
	DefaultUploadFolder = "varsha_travels"
	DefaultMaxWidth     = 2000
	DefaultMaxPixels    = 40_000_000
	JPEGQuality         = 85

	// Background work
	ImageDeleteTimeout = 30 * time.Second
	DatabaseTimeout    = 10 * time.Second
)

// Context keys set by the middleware
const (
	ContextRequestID  = "request_id"
	ContextAdminEmail = "admin_email"
)

var AllowedImageTypes = []string{"jpg", "jpeg", "png", "gif", "webp", "svg"}

// Response messages
const (
	MsgHealthy             = "Varsha Travels backend is running"
	MsgLoginSuccessful     = "Login successful"
	MsgImageUploaded       = "Image uploaded successfully"
	MsgEmailRequired       = "Email is required"
	MsgPasswordRequired    = "Password is required"
	MsgAdminNotConfigured  = "Admin credentials not configured. Please contact the administrator."
	MsgInvalidCredentials  = "Invalid email or password"
	MsgLoginFailed         = "Login failed"
	MsgNoImage             = "No image file uploaded"
	MsgImageTooLarge       = "Image must be 5MB or smaller"
	MsgOnlyImages          = "Only image uploads are allowed"
	MsgUploadFailed        = "Failed to upload image"
	MsgUnauthorized        = "Unauthorized"
	MsgInvalidRequestBody  = "Invalid request body"
	MsgRouteNotFound       = "Route not found"
	MsgInternalServerError = "Internal server error"
)
