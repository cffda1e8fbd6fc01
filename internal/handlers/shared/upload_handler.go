package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"varsha-travels/internal/services"
	"varsha-travels/internal/utils"
	"varsha-travels/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ImageUploader interface {
	Upload(ctx context.Context, src io.Reader, filename, declaredType string) (*services.UploadResult, error)
}

type UploadHandler struct {
	uploader ImageUploader
	maxBytes int64
	logger   *logger.Logger
}

func NewUploadHandler(uploader ImageUploader, maxBytes int64, log *logger.Logger) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = utils.MaxImageSize
	}
	if log == nil {
		log = logger.Discard()
	}
	return &UploadHandler{
		uploader: uploader,
		maxBytes: maxBytes,
		logger:   log,
	}
}

// Upload accepts one multipart "image" field and forwards it to storage
func (h *UploadHandler) Upload(c *gin.Context) {
	// leave room for the multipart envelope around the file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.BadRequestResponse(c, utils.MsgImageTooLarge)
			return
		}
		utils.BadRequestResponse(c, utils.MsgNoImage)
		return
	}

	if fileHeader.Size > h.maxBytes {
		utils.BadRequestResponse(c, utils.MsgImageTooLarge)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !utils.IsImageContentType(contentType) {
		utils.BadRequestResponse(c, utils.MsgOnlyImages)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("failed to open multipart file")
		utils.InternalServerErrorResponse(c, utils.MsgUploadFailed)
		return
	}
	defer file.Close()

	result, err := h.uploader.Upload(c.Request.Context(), file, fileHeader.Filename, contentType)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error(utils.MsgUploadFailed)
		utils.InternalServerErrorResponse(c, utils.MsgUploadFailed)
		return
	}

	utils.CreatedResponse(c, result)
}
