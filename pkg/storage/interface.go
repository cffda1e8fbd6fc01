package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// ErrNotConfigured is returned when a provider is selected without the
// settings it needs.
var ErrNotConfigured = errors.New("storage provider not configured")

// StorageProvider stores images and hands back a public URL plus an opaque
// key. The key is the only handle needed to delete the object later.
type StorageProvider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	FileExists(ctx context.Context, key string) (bool, error)
	Name() string
}

type UploadRequest struct {
	// Key is folder/name without extension; providers that keep
	// extensions append one derived from Filename.
	Key          string            `json:"key"`
	Filename     string            `json:"filename"`
	Reader       io.Reader         `json:"-"`
	ContentType  string            `json:"content_type"`
	Size         int64             `json:"size"`
	Metadata     map[string]string `json:"metadata"`
	CacheControl string            `json:"cache_control"`
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	ETag string `json:"etag"`
}

// objectKey joins the request key with the original file extension.
func objectKey(request *UploadRequest) string {
	ext := strings.ToLower(path.Ext(request.Filename))
	if ext == "" {
		ext = extensionFor(request.ContentType)
	}
	return request.Key + ext
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	}
	return ""
}

func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	}
	return "application/octet-stream"
}
