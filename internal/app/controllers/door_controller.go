package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/app/services"
	"github.com/eduface/eduface/internal/middleware"
)

// DoorController handles door relay commands
type DoorController struct {
	doorService *services.DoorService
	logger      zerolog.Logger
}

// NewDoorController creates a new DoorController
func NewDoorController(doorService *services.DoorService, logger zerolog.Logger) *DoorController {
	return &DoorController{
		doorService: doorService,
		logger:      logger,
	}
}

// Open triggers the door relay
// @Summary Trigger the door relay
// @Description Runs the relay control script with the requested action and
// relays its outcome. Security only.
// @Tags door
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DoorRequest true "Door action"
// @Success 200 {object} dto.DoorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid action"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not security"
// @Failure 500 {object} dto.ErrorResponse "Relay script failed to run"
// @Router /door/open [post]
func (c *DoorController) Open(ctx *gin.Context) {
	var req dto.DoorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid door request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID := ctx.GetInt64(middleware.ContextUserID)
	result, err := c.doorService.Trigger(ctx.Request.Context(), req.Action)
	if err != nil {
		c.logger.Error().Err(err).
			Int64("userID", userID).
			Str("action", req.Action).
			Msg("Door relay command failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userID", userID).
		Str("action", req.Action).
		Str("status", result.Status).
		Int("exitCode", result.ExitCode).
		Msg("Door relay command executed")

	ctx.JSON(http.StatusOK, result)
}
