package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/services"
	"github.com/eduface/eduface/internal/middleware"
)

// AlertController handles the unauthorized-capture alert feed
type AlertController struct {
	alertService *services.AlertService
	logger       zerolog.Logger
}

// NewAlertController creates a new AlertController
func NewAlertController(alertService *services.AlertService, logger zerolog.Logger) *AlertController {
	return &AlertController{
		alertService: alertService,
		logger:       logger,
	}
}

// List returns unauthorized-capture alerts, newest first
// @Summary List alerts
// @Description Returns the snapshots captured for unrecognized faces, newest
// first. An empty list is returned when no captures exist. Security only.
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AlertResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not security"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alerts [get]
func (c *AlertController) List(ctx *gin.Context) {
	alerts, err := c.alertService.List()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to read alert feed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, alerts)
}
