package handlers

import (
	"context"
	"errors"
	"net/http"

	"varsha-travels/internal/services"
	"varsha-travels/internal/utils"
	"varsha-travels/internal/validators"
	"varsha-travels/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ResourceService is implemented by services.CRUDService.
type ResourceService[D any, C any, U any] interface {
	Name() string
	List(ctx context.Context) ([]D, error)
	Get(ctx context.Context, id string) (D, error)
	Create(ctx context.Context, in *C) (D, error)
	Update(ctx context.Context, id string, in *U) (D, error)
	Delete(ctx context.Context, id string) error
}

// Messages are the client facing texts of one resource.
type Messages struct {
	ListFailed   string
	NotFound     string
	GetFailed    string
	CreateFailed string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

type ResourceHandler[D any, C any, U any] struct {
	service  ResourceService[D, C, U]
	messages Messages
	logger   *logger.Logger
}

func NewResourceHandler[D any, C any, U any](service ResourceService[D, C, U], messages Messages, log *logger.Logger) *ResourceHandler[D, C, U] {
	if log == nil {
		log = logger.Discard()
	}
	return &ResourceHandler[D, C, U]{
		service:  service,
		messages: messages,
		logger:   log.WithField("resource", service.Name()),
	}
}

// List returns every document, newest first
func (h *ResourceHandler[D, C, U]) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, h.messages.ListFailed)
		return
	}

	utils.SuccessResponse(c, docs)
}

// Get returns one document by id
func (h *ResourceHandler[D, C, U]) Get(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, h.messages.GetFailed)
		return
	}

	utils.SuccessResponse(c, doc)
}

// Create validates the body and stores a new document
func (h *ResourceHandler[D, C, U]) Create(c *gin.Context) {
	var in C
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected create body")
		utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
		return
	}

	doc, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		h.fail(c, err, h.messages.CreateFailed)
		return
	}

	utils.CreatedResponse(c, doc)
}

// Update applies a partial update; absent fields keep their stored value
func (h *ResourceHandler[D, C, U]) Update(c *gin.Context) {
	var in U
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected update body")
		utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
		return
	}

	doc, err := h.service.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		h.fail(c, err, h.messages.UpdateFailed)
		return
	}

	utils.SuccessResponse(c, doc)
}

// Delete removes a document. Its image, if any, is removed in the background.
func (h *ResourceHandler[D, C, U]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, h.messages.DeleteFailed)
		return
	}

	utils.MessageOnly(c, http.StatusOK, h.messages.Deleted)
}

func (h *ResourceHandler[D, C, U]) fail(c *gin.Context, err error, fallback string) {
	writeError(c, h.logger, err, h.messages.NotFound, fallback)
}

// writeError maps service errors to responses. Only server faults are
// logged above debug.
func writeError(c *gin.Context, log *logger.Logger, err error, notFound, fallback string) {
	log = log.WithContext(c.Request.Context()).WithField("id", c.Param("id"))

	switch {
	case validators.IsValidationError(err):
		log.WithError(err).Debug("validation failed")
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFound)
	case errors.Is(err, services.ErrUpdateNotSupported):
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, fallback)
	default:
		log.WithError(err).Error(fallback)
		utils.InternalServerErrorResponse(c, fallback)
	}
}
