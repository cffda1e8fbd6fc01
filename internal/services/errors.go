package services

import (
	"errors"

	"varsha-travels/internal/repositories/interfaces"
)

var (
	ErrNotFound            = interfaces.ErrNotFound
	ErrUpdateNotSupported  = errors.New("update not supported for this resource")
	ErrAdminNotConfigured  = errors.New("admin credentials not configured")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrStorageNotAvailable = errors.New("image storage is not configured")
)
