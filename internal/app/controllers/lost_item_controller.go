package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/app/services"
	"github.com/tanish/hostelhub/internal/middleware"
)

// LostItemController handles the lost and found register
type LostItemController struct {
	lostItemService *services.LostItemService
	logger          zerolog.Logger
}

// NewLostItemController creates a new LostItemController
func NewLostItemController(lostItemService *services.LostItemService, logger zerolog.Logger) *LostItemController {
	return &LostItemController{
		lostItemService: lostItemService,
		logger:          logger,
	}
}

// Report handles a found item report by an authenticated student
// @Summary Report a found item
// @Tags lostfound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReportLostItemRequest true "Item details"
// @Success 201 {object} dto.APIResponse "Item recorded"
// @Failure 409 {object} dto.ErrorResponse "Item id already reported"
// @Router /lostfound [post]
func (c *LostItemController) Report(ctx *gin.Context) {
	var req dto.ReportLostItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	rollNo := ctx.GetString(middleware.ContextRollNo)
	item, err := c.lostItemService.Report(ctx.Request.Context(), rollNo, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(item))
}

// List returns the full lost and found register
// @Summary List lost and found items
// @Tags lostfound
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Register contents, empty list when none"
// @Router /lostfound [get]
func (c *LostItemController) List(ctx *gin.Context) {
	items, err := c.lostItemService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(items))
}

// UpdateStatus moves an item along the claim lifecycle
// @Summary Update lost item status
// @Tags lostfound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item_id path string true "Item id"
// @Param request body dto.UpdateLostItemStatusRequest true "New status"
// @Success 200 {object} dto.UpdateStatusResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown status value or transition not allowed"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /lostfound/{item_id}/status [patch]
func (c *LostItemController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateLostItemStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	itemID := ctx.Param("item_id")
	item, err := c.lostItemService.UpdateStatus(ctx.Request.Context(), itemID, req.Status)
	if err != nil {
		c.logger.Warn().Err(err).Str("item_id", itemID).Msg("Lost item status update rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateStatusResponse{
		Message:   "Lost item status updated",
		ID:        item.ItemID,
		NewStatus: string(item.Status),
	})
}
