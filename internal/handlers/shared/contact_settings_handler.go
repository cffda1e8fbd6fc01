package handlers

import (
	"context"

	"varsha-travels/internal/models"
	"varsha-travels/internal/utils"
	"varsha-travels/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactSettingsService interface {
	Current(ctx context.Context) (*models.ContactSettings, error)
	Update(ctx context.Context, id string, in *models.ContactSettingsPatch) (*models.ContactSettings, error)
}

type ContactSettingsHandler struct {
	service ContactSettingsService
	logger  *logger.Logger
}

func NewContactSettingsHandler(service ContactSettingsService, log *logger.Logger) *ContactSettingsHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &ContactSettingsHandler{
		service: service,
		logger:  log.WithField("resource", models.CollectionContactSettings),
	}
}

// Get returns the settings document, creating the defaults on first use
func (h *ContactSettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Current(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, ContactSettingsMessages.NotFound, ContactSettingsMessages.GetFailed)
		return
	}

	utils.SuccessResponse(c, settings)
}

func (h *ContactSettingsHandler) Update(c *gin.Context) {
	var patch models.ContactSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
		return
	}

	settings, err := h.service.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		writeError(c, h.logger, err, ContactSettingsMessages.NotFound, ContactSettingsMessages.UpdateFailed)
		return
	}

	utils.SuccessResponse(c, settings)
}
