package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/app/services"
	"github.com/tanish/hostelhub/internal/middleware"
)

// ComplaintController handles complaint filing and review
type ComplaintController struct {
	complaintService *services.ComplaintService
	logger           zerolog.Logger
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService, logger zerolog.Logger) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		logger:           logger,
	}
}

// File handles complaint submission by an authenticated student
// @Summary File a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FileComplaintRequest true "Complaint details"
// @Success 201 {object} dto.FileComplaintResponse "Complaint filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or department name"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid student token"
// @Router /complaint [post]
func (c *ComplaintController) File(ctx *gin.Context) {
	var req dto.FileComplaintRequest
	if !bindJSON(ctx, &req) {
		return
	}

	rollNo := ctx.GetString(middleware.ContextRollNo)
	complaint, err := c.complaintService.File(ctx.Request.Context(), rollNo, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.FileComplaintResponse{
		Message:     "Complaint filed successfully",
		ComplaintID: complaint.ComplaintID,
	})
}

// ListMine returns the authenticated student's complaint history. Students
// may only read their own history; the path roll number must match the token.
// @Summary List my complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param roll_no path string true "Roll number"
// @Success 200 {object} dto.APIResponse "Complaint history, empty list when none"
// @Failure 403 {object} dto.ErrorResponse "Requesting another student's history"
// @Router /complaint/{roll_no} [get]
func (c *ComplaintController) ListMine(ctx *gin.Context) {
	rollNo := ctx.GetString(middleware.ContextRollNo)

	if pathRollNo := ctx.Param("roll_no"); pathRollNo != rollNo {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("Students may only read their own complaint history")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	complaints, err := c.complaintService.ListMine(ctx.Request.Context(), rollNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(complaints))
}

// ListForDepartment returns the complaints routed to the admin's department
// @Summary List department complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Department complaints joined with student details"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid support token"
// @Router /department-complaints [get]
func (c *ComplaintController) ListForDepartment(ctx *gin.Context) {
	dName := ctx.GetString(middleware.ContextDName)

	complaints, err := c.complaintService.ListForDepartment(ctx.Request.Context(), dName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(complaints))
}

// UpdateStatus moves a complaint along its lifecycle
// @Summary Update complaint status
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param complaint_id path string true "Complaint id"
// @Param request body dto.UpdateComplaintStatusRequest true "New status"
// @Success 200 {object} dto.UpdateStatusResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown status value or transition not allowed"
// @Failure 403 {object} dto.ErrorResponse "Complaint routed to another department"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /complaint/{complaint_id}/status [patch]
func (c *ComplaintController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateComplaintStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	dName := ctx.GetString(middleware.ContextDName)
	complaintID := ctx.Param("complaint_id")

	complaint, err := c.complaintService.UpdateStatus(ctx.Request.Context(), dName, complaintID, req.Status)
	if err != nil {
		c.logger.Warn().Err(err).Str("complaint_id", complaintID).Msg("Complaint status update rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateStatusResponse{
		Message:   "Complaint status updated",
		ID:        complaint.ComplaintID,
		NewStatus: string(complaint.Status),
	})
}
