package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/app/services"
	"github.com/tanish/hostelhub/internal/middleware"
)

// FoodRequestController handles meal request filing and review
type FoodRequestController struct {
	foodService *services.FoodRequestService
	logger      zerolog.Logger
}

// NewFoodRequestController creates a new FoodRequestController
func NewFoodRequestController(foodService *services.FoodRequestService, logger zerolog.Logger) *FoodRequestController {
	return &FoodRequestController{
		foodService: foodService,
		logger:      logger,
	}
}

// File handles meal request submission by an authenticated student
// @Summary File a food request
// @Tags foodrequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FileFoodRequestRequest true "Request details"
// @Success 201 {object} dto.FileFoodRequestResponse "Request filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid code, meal type or date, or student has no hostel"
// @Failure 409 {object} dto.ErrorResponse "Request code already taken"
// @Router /foodrequest [post]
func (c *FoodRequestController) File(ctx *gin.Context) {
	var req dto.FileFoodRequestRequest
	if !bindJSON(ctx, &req) {
		return
	}

	rollNo := ctx.GetString(middleware.ContextRollNo)
	request, err := c.foodService.File(ctx.Request.Context(), rollNo, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.FileFoodRequestResponse{
		Message: "Food request filed successfully",
		Request: dto.FoodRequestEcho{
			FoodID: request.FoodID,
			Type:   request.Type,
			Date:   request.Date.Format("2006-01-02"),
			Status: request.Status,
		},
	})
}

// ListMine returns the authenticated student's food requests
// @Summary List my food requests
// @Tags foodrequests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Request history, empty list when none"
// @Router /foodrequest/student [get]
func (c *FoodRequestController) ListMine(ctx *gin.Context) {
	rollNo := ctx.GetString(middleware.ContextRollNo)

	requests, err := c.foodService.ListMine(ctx.Request.Context(), rollNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(requests))
}

// ListForWarden returns the requests filed from the warden's hostels
// @Summary List food requests for review
// @Tags foodrequests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Requests from the warden's hostels"
// @Router /foodrequests [get]
func (c *FoodRequestController) ListForWarden(ctx *gin.Context) {
	wardenID := ctx.GetString(middleware.ContextWardenID)

	requests, err := c.foodService.ListForWarden(ctx.Request.Context(), wardenID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(requests))
}

// UpdateStatus lets a warden approve or reject a pending request
// @Summary Update food request status
// @Tags foodrequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food_id path string true "Request code"
// @Param request body dto.UpdateFoodStatusRequest true "New status with optional remarks"
// @Success 200 {object} dto.UpdateStatusResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown status value or transition not allowed"
// @Failure 403 {object} dto.ErrorResponse "Request from another warden's hostel"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /foodrequest/{food_id}/status [patch]
func (c *FoodRequestController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateFoodStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	wardenID := ctx.GetString(middleware.ContextWardenID)
	foodID := ctx.Param("food_id")

	request, err := c.foodService.UpdateStatus(ctx.Request.Context(), wardenID, foodID, req.Status, req.Remarks)
	if err != nil {
		c.logger.Warn().Err(err).Str("food_id", foodID).Msg("Food request status update rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateStatusResponse{
		Message:   "Food request status updated",
		ID:        request.FoodID,
		NewStatus: string(request.Status),
	})
}
