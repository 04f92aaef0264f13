package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/validation"
)

// ComplaintService handles complaint filing, listing and status moves
type ComplaintService struct {
	complaints ComplaintStore
	logger     zerolog.Logger
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(complaints ComplaintStore, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		logger:     logger.With().Str("service", "complaint").Logger(),
	}
}

// newComplaintID builds a collision-resistant complaint identifier
func newComplaintID() string {
	return fmt.Sprintf("C%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// File records a new complaint for the authenticated student. The complaint
// starts in Pending and is routed to the named department.
func (s *ComplaintService) File(ctx context.Context, rollNo string, req dto.FileComplaintRequest) (*models.Complaint, error) {
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return nil, apperrors.NewValidationError("description is required")
	}
	if len(desc) > validation.DescriptionMaxLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("description must be %d characters or fewer", validation.DescriptionMaxLength))
	}
	if !models.IsValidDepartment(req.DName) {
		return nil, apperrors.ErrInvalidDepartment
	}

	hostelID := req.HostelID
	if hostelID != nil && strings.TrimSpace(*hostelID) == "" {
		hostelID = nil
	}

	complaint := &models.Complaint{
		ComplaintID:   newComplaintID(),
		RollNo:        &rollNo,
		HostelID:      hostelID,
		DName:         req.DName,
		Status:        models.ComplaintPending,
		ComplaintDate: time.Now().UTC(),
		Description:   desc,
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("complaint_id", complaint.ComplaintID).
		Str("roll_no", rollNo).
		Str("d_name", complaint.DName).
		Msg("Complaint filed")

	return complaint, nil
}

// ListMine returns the complaints filed by the given student, newest first.
// An empty history yields an empty slice, not an error.
func (s *ComplaintService) ListMine(ctx context.Context, rollNo string) ([]models.Complaint, error) {
	return s.complaints.ListByRollNo(ctx, rollNo)
}

// ListForDepartment returns complaints routed to the admin's department,
// joined with the filing student's details.
func (s *ComplaintService) ListForDepartment(ctx context.Context, dName string) ([]dto.DepartmentComplaint, error) {
	return s.complaints.ListByDepartment(ctx, dName)
}

// UpdateStatus moves a complaint along its lifecycle. Only the department
// the complaint is routed to may act on it. Re-asserting the current status
// succeeds without a write; any other move must follow the transition graph.
func (s *ComplaintService) UpdateStatus(ctx context.Context, dName, complaintID, rawStatus string) (*models.Complaint, error) {
	next, ok := models.ParseComplaintStatus(rawStatus)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if complaint.DName != dName {
		return nil, apperrors.NewForbiddenError("complaint belongs to another department")
	}

	if complaint.Status == next {
		return complaint, nil
	}
	if !complaint.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrIllegalTransition
	}

	if err := s.complaints.UpdateStatus(ctx, complaintID, complaint.Status, next); err != nil {
		return nil, err
	}
	complaint.Status = next

	s.logger.Info().
		Str("complaint_id", complaintID).
		Str("d_name", dName).
		Str("status", string(next)).
		Msg("Complaint status updated")

	return complaint, nil
}
