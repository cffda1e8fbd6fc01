package config

import (
	"errors"
	"fmt"
)

const (
	StorageCloudinary = "cloudinary"
	StorageS3         = "s3"
	StorageGCS        = "gcs"
	StorageLocal      = "local"
)

type StorageConfig struct {
	Provider   string                   `yaml:"provider"`
	Cloudinary *CloudinaryStorageConfig `yaml:"cloudinary"`
	Local      *LocalStorageConfig      `yaml:"local"`
	AWS        *AWSStorageConfig        `yaml:"aws"`
	GCP        *GCPStorageConfig        `yaml:"gcp"`
}

type CloudinaryStorageConfig struct {
	URL       string `yaml:"url"`
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

type LocalStorageConfig struct {
	BasePath string `yaml:"base_path"`
	BaseURL  string `yaml:"base_url"`
}

type AWSStorageConfig struct {
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CDNDomain       string `yaml:"cdn_domain"`
}

type GCPStorageConfig struct {
	ProjectID       string `yaml:"project_id"`
	Bucket          string `yaml:"bucket"`
	CredentialsFile string `yaml:"credentials_file"`
	CDNDomain       string `yaml:"cdn_domain"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider: getEnv("STORAGE_PROVIDER", StorageCloudinary),
		Cloudinary: &CloudinaryStorageConfig{
			URL:       getEnv("CLOUDINARY_URL", ""),
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Local: &LocalStorageConfig{
			BasePath: getEnv("LOCAL_STORAGE_PATH", "./uploads"),
			BaseURL:  getEnv("LOCAL_STORAGE_URL", "http://localhost:5000/uploads"),
		},
		AWS: &AWSStorageConfig{
			Region:          getEnv("AWS_S3_REGION", "ap-south-1"),
			Bucket:          getEnv("AWS_S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			CDNDomain:       getEnv("AWS_CLOUDFRONT_DOMAIN", ""),
		},
		GCP: &GCPStorageConfig{
			ProjectID:       getEnv("GCS_PROJECT_ID", ""),
			Bucket:          getEnv("GCS_BUCKET", ""),
			CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
			CDNDomain:       getEnv("GCS_CDN_DOMAIN", ""),
		},
	}
}

// Validate checks that the selected provider has the settings it needs.
func (s *StorageConfig) Validate() error {
	switch s.Provider {
	case StorageCloudinary:
		c := s.Cloudinary
		if c == nil || (c.URL == "" && (c.CloudName == "" || c.APIKey == "" || c.APISecret == "")) {
			return errors.New("cloudinary storage requires CLOUDINARY_URL or CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
		}
	case StorageS3:
		if s.AWS == nil || s.AWS.Bucket == "" {
			return errors.New("s3 storage requires AWS_S3_BUCKET")
		}
	case StorageGCS:
		if s.GCP == nil || s.GCP.Bucket == "" {
			return errors.New("gcs storage requires GCS_BUCKET")
		}
	case StorageLocal:
		if s.Local == nil || s.Local.BasePath == "" {
			return errors.New("local storage requires LOCAL_STORAGE_PATH")
		}
	default:
		return fmt.Errorf("unsupported storage provider %q", s.Provider)
	}
	return nil
}
