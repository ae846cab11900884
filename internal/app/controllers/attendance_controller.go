package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/app/services"
	"github.com/eduface/eduface/internal/middleware"
)

// AttendanceController handles attendance listing and marking
type AttendanceController struct {
	attendanceService *services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// List returns attendance rows for one calendar day
// @Summary List attendance for a date
// @Description Returns attendance rows joined with student identity for the
// given date. Defaults to today when the date query parameter is absent.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date in YYYY-MM-DD format, defaults to today"
// @Success 200 {array} dto.AttendanceRowResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) List(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	rows, err := c.attendanceService.ListByDate(ctx.Request.Context(), date)
	if err != nil {
		c.logger.Error().Err(err).Str("date", date).Msg("Failed to list attendance")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// Mark records attendance for one student on one date
// @Summary Mark attendance
// @Description Inserts an attendance row for the student and date. A second
// mark for the same pair is acknowledged without modifying the stored row.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance mark"
// @Success 200 {object} dto.SuccessResponse "Already marked"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) Mark(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid attendance mark payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.attendanceService.Mark(ctx.Request.Context(), req.StudentID, req.Date, req.Status)
	if err != nil {
		c.logger.Error().Err(err).
			Int64("studentID", req.StudentID).
			Str("date", req.Date).
			Msg("Failed to mark attendance")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if result.AlreadyMarked {
		ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Already marked"})
		return
	}

	c.logger.Info().
		Int64("attendanceID", result.ID).
		Int64("studentID", req.StudentID).
		Str("date", req.Date).
		Str("status", req.Status).
		Msg("Attendance marked")

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: result.ID})
}
