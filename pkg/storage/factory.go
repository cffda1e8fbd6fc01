package storage

import (
	"context"
	"fmt"
)

// Config selects and configures one provider.
type Config struct {
	Provider string

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	LocalBasePath string
	LocalBaseURL  string

	AWSRegion          string
	AWSBucket          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSCDNDomain       string

	GCSBucket          string
	GCSCredentialsFile string
	GCSCDNDomain       string
}

// NewProvider builds the configured provider. Cloudinary is the default.
func NewProvider(ctx context.Context, cfg Config) (StorageProvider, error) {
	var (
		provider StorageProvider
		err      error
	)
	switch cfg.Provider {
	case "cloudinary", "":
		provider, err = asProvider(NewCloudinaryStorage(cfg.CloudinaryURL, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret))
	case "s3":
		provider, err = asProvider(NewAWSS3Storage(ctx, cfg.AWSRegion, cfg.AWSBucket, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSCDNDomain))
	case "gcs":
		provider, err = asProvider(NewGCPStorage(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile, cfg.GCSCDNDomain))
	case "local":
		provider, err = asProvider(NewLocalStorage(cfg.LocalBasePath, cfg.LocalBaseURL))
	default:
		return nil, fmt.Errorf("unsupported storage provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// asProvider keeps a failed constructor from leaking a typed nil.
func asProvider[P StorageProvider](p P, err error) (StorageProvider, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
