package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/validation"
)

// foodDateLayout is the wire format for request dates
const foodDateLayout = "2006-01-02"

// FoodRequestService handles meal request filing, listing and review
type FoodRequestService struct {
	requests FoodRequestStore
	students StudentStore
	logger   zerolog.Logger
}

// NewFoodRequestService creates a new food request service instance
func NewFoodRequestService(requests FoodRequestStore, students StudentStore, logger zerolog.Logger) *FoodRequestService {
	return &FoodRequestService{
		requests: requests,
		students: students,
		logger:   logger.With().Str("service", "foodrequest").Logger(),
	}
}

// File records a new meal request for the authenticated student. The request
// snapshots the student's current hostel; students without a hostel cannot
// file.
func (s *FoodRequestService) File(ctx context.Context, rollNo string, req dto.FileFoodRequestRequest) (*models.FoodRequest, error) {
	if !validation.CompiledPatterns.FoodCode.MatchString(req.FoodID) {
		return nil, apperrors.NewValidationError("food_id must be exactly 4 digits")
	}

	mealType, ok := models.ParseMealType(req.Type)
	if !ok {
		return nil, apperrors.NewValidationError("type must be Breakfast, Lunch or Dinner")
	}

	date, err := time.ParseInLocation(foodDateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("date must use the YYYY-MM-DD format")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, apperrors.NewValidationError("date must not be in the past")
	}

	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if student.HostelID == nil {
		return nil, apperrors.ErrNoHostelAssigned
	}

	request := &models.FoodRequest{
		FoodID:   req.FoodID,
		RollNo:   &rollNo,
		HostelID: student.HostelID,
		Type:     mealType,
		Date:     date,
		Status:   models.FoodPending,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("food_id", request.FoodID).
		Str("roll_no", rollNo).
		Str("type", string(mealType)).
		Msg("Food request filed")

	return request, nil
}

// ListMine returns the authenticated student's requests, newest first
func (s *FoodRequestService) ListMine(ctx context.Context, rollNo string) ([]dto.StudentFoodRequest, error) {
	return s.requests.ListByRollNo(ctx, rollNo)
}

// ListForWarden returns the requests filed from hostels the warden manages
func (s *FoodRequestService) ListForWarden(ctx context.Context, wardenID string) ([]dto.WardenFoodRequest, error) {
	return s.requests.ListByWarden(ctx, wardenID)
}

// UpdateStatus lets a warden approve or reject a pending request from one of
// their hostels. Repeating the current status is a no-op; any other move must
// follow the transition graph.
func (s *FoodRequestService) UpdateStatus(ctx context.Context, wardenID, foodID, rawStatus string, remarks *string) (*models.FoodRequest, error) {
	next, ok := models.ParseFoodRequestStatus(rawStatus)
	if !ok || next == models.FoodPending {
		return nil, apperrors.ErrInvalidStatus
	}

	request, ownerWardenID, err := s.requests.GetByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if ownerWardenID == nil || *ownerWardenID != wardenID {
		return nil, apperrors.NewForbiddenError("request belongs to another warden's hostel")
	}

	if request.Status == next {
		return request, nil
	}
	if !request.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrIllegalTransition
	}

	if err := s.requests.UpdateStatus(ctx, foodID, request.Status, next, remarks); err != nil {
		return nil, err
	}
	request.Status = next
	if remarks != nil {
		request.Remarks = remarks
	}

	s.logger.Info().
		Str("food_id", foodID).
		Str("warden_id", wardenID).
		Str("status", string(next)).
		Msg("Food request status updated")

	return request, nil
}
