package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/app/services"
	"github.com/tanish/hostelhub/internal/middleware"
)

// HostelController handles hostel administration
type HostelController struct {
	hostelService *services.HostelService
	logger        zerolog.Logger
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService *services.HostelService, logger zerolog.Logger) *HostelController {
	return &HostelController{
		hostelService: hostelService,
		logger:        logger,
	}
}

// CreateHostel handles hostel creation
// @Summary Create a new hostel
// @Tags hostels
// @Accept json
// @Produce json
// @Param request body dto.CreateHostelRequest true "Hostel information"
// @Success 201 {object} dto.APIResponse "Hostel created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or capacity"
// @Failure 404 {object} dto.ErrorResponse "Referenced warden not found"
// @Failure 409 {object} dto.ErrorResponse "Hostel id already taken"
// @Router /createHostel [post]
func (c *HostelController) CreateHostel(ctx *gin.Context) {
	var req dto.CreateHostelRequest
	if !bindJSON(ctx, &req) {
		return
	}

	hostel, err := c.hostelService.CreateHostel(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Err(err).Str("hostel_id", req.HostelID).Msg("Hostel creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("hostel_id", hostel.HostelID).Msg("Hostel created")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(hostel))
}
