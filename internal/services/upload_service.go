package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/google/uuid"

	"varsha-travels/internal/utils"
	"varsha-travels/pkg/logger"
	"varsha-travels/pkg/storage"
)

type UploadResult struct {
	Message   string `json:"message"`
	SecureURL string `json:"secureUrl"`
	PublicID  string `json:"publicId"`
}

// UploadService forwards admin image uploads to object storage. Files are
// spooled to a temp file first, and that copy is always removed.
type UploadService struct {
	storage  storage.StorageProvider
	folder   string
	maxWidth  uint
	maxPixels int64
	tempDir   string
	logger    *logger.Logger
}

func NewUploadService(provider storage.StorageProvider, folder string, maxWidth uint, maxPixels int64, log *logger.Logger) *UploadService {
	if folder == "" {
		folder = utils.DefaultUploadFolder
	}
	if log == nil {
		log = logger.Discard()
	}
	return &UploadService{
		storage:   provider,
		folder:    folder,
		maxWidth:  maxWidth,
		maxPixels: maxPixels,
		logger:    log,
	}
}

func (s *UploadService) Upload(ctx context.Context, src io.Reader, filename, declaredType string) (*UploadResult, error) {
	if s.storage == nil {
		return nil, ErrStorageNotAvailable
	}

	tmpPath, size, err := utils.SaveTempFile(s.tempDir, src, filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := utils.DeleteFile(tmpPath); err != nil {
			s.logger.WithError(err).WithField("path", tmpPath).Warn("failed to remove temp upload")
		}
	}()

	file, err := os.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen temp upload: %w", err)
	}
	defer file.Close()

	contentType := declaredType
	if sniffed, err := utils.SniffContentType(file); err == nil && utils.IsImageContentType(sniffed) {
		contentType = sniffed
	}

	var body io.Reader = file
	var resized bytes.Buffer
	changed, err := utils.DownscaleImage(file, s.maxWidth, s.maxPixels, &resized)
	switch {
	case errors.Is(err, utils.ErrTooManyPixels):
		s.logger.WithField("filename", filename).Warn("image over the decode pixel limit, uploading original")
	case err != nil:
		s.logger.WithError(err).WithField("filename", filename).Warn("downscale failed, uploading original")
	}
	if changed {
		body = &resized
		size = int64(resized.Len())
	} else if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:          path.Join(s.folder, uuid.NewString()),
		Filename:     filename,
		Reader:       body,
		ContentType:  contentType,
		Size:         size,
		CacheControl: "public, max-age=31536000",
	})
	s.logger.WithField("provider", s.storage.Name()).LogStorageEvent("upload", filename, err)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		Message:   utils.MsgImageUploaded,
		SecureURL: resp.URL,
		PublicID:  resp.Key,
	}, nil
}
