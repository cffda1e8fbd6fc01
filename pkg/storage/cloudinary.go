package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage keeps images on Cloudinary. Keys are public ids.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage accepts either a cloudinary:// URL or the three
// separate credentials.
func NewCloudinaryStorage(url, cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case url != "":
		cld, err = cloudinary.NewFromURL(url)
	case cloudName != "" && apiKey != "" && apiSecret != "":
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	default:
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStorage{cld: cld}, nil
}

func (c *CloudinaryStorage) Name() string {
	return "cloudinary"
}

func (c *CloudinaryStorage) Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error) {
	resp, err := c.cld.Upload.Upload(ctx, request.Reader, uploader.UploadParams{
		PublicID:     request.Key,
		ResourceType: "image",
		Overwrite:    api.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload to cloudinary: %s", resp.Error.Message)
	}

	return &UploadResponse{
		Key:  resp.PublicID,
		URL:  resp.SecureURL,
		Size: int64(resp.Bytes),
		ETag: resp.Etag,
	}, nil
}

func (c *CloudinaryStorage) Delete(ctx context.Context, key string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: key})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("failed to delete from cloudinary: %s", resp.Error.Message)
	}
	// "not found" means there is nothing left to clean up
	if resp.Result != "ok" && resp.Result != "not found" {
		return errors.New("cloudinary destroy returned " + resp.Result)
	}
	return nil
}

func (c *CloudinaryStorage) FileExists(ctx context.Context, key string) (bool, error) {
	resp, err := c.cld.Admin.Asset(ctx, admin.AssetParams{PublicID: key})
	if err != nil {
		return false, err
	}
	if resp.Error.Message != "" {
		return false, nil
	}
	return resp.PublicID != "", nil
}
