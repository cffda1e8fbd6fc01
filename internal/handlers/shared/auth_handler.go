package handlers

import (
	"errors"

	"varsha-travels/internal/services"
	"varsha-travels/internal/utils"
	"varsha-travels/internal/validators"
	"varsha-travels/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &AuthHandler{
		authService: authService,
		logger:      log,
	}
}

// Login checks the admin credentials and issues a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		switch {
		case validators.IsValidationError(err):
			utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, services.ErrAdminNotConfigured):
			utils.InternalServerErrorResponse(c, utils.MsgAdminNotConfigured)
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, utils.MsgInvalidCredentials)
		default:
			h.logger.WithContext(c.Request.Context()).WithError(err).Error("admin login failed")
			utils.InternalServerErrorResponse(c, utils.MsgLoginFailed)
		}
		return
	}

	utils.SuccessResponse(c, response)
}
