package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
)

// LostItemService handles the lost and found register
type LostItemService struct {
	items  LostItemStore
	logger zerolog.Logger
}

// NewLostItemService creates a new lost and found service instance
func NewLostItemService(items LostItemStore, logger zerolog.Logger) *LostItemService {
	return &LostItemService{
		items:  items,
		logger: logger.With().Str("service", "lostfound").Logger(),
	}
}

// Report records a found item turned in by the authenticated student
func (s *LostItemService) Report(ctx context.Context, rollNo string, req dto.ReportLostItemRequest) (*models.LostItem, error) {
	if strings.TrimSpace(req.ItemID) == "" || strings.TrimSpace(req.ItemName) == "" {
		return nil, apperrors.NewValidationError("item id and name are required")
	}
	if strings.TrimSpace(req.FoundLocation) == "" {
		return nil, apperrors.NewValidationError("found location is required")
	}

	item := &models.LostItem{
		ItemID:        req.ItemID,
		RollNo:        &rollNo,
		ItemName:      req.ItemName,
		FoundLocation: req.FoundLocation,
		ReportDate:    time.Now().UTC(),
		Status:        models.ItemUnclaimed,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("item_id", item.ItemID).
		Str("roll_no", rollNo).
		Msg("Lost item reported")

	return item, nil
}

// List returns the full register, newest first
func (s *LostItemService) List(ctx context.Context) ([]models.LostItem, error) {
	return s.items.List(ctx)
}

// UpdateStatus moves an item along Unclaimed -> Claimed -> Returned.
// Repeating the current status is a no-op.
func (s *LostItemService) UpdateStatus(ctx context.Context, itemID, rawStatus string) (*models.LostItem, error) {
	next, ok := models.ParseLostItemStatus(rawStatus)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.Status == next {
		return item, nil
	}
	if !item.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrIllegalTransition
	}

	if err := s.items.UpdateStatus(ctx, itemID, item.Status, next); err != nil {
		return nil, err
	}
	item.Status = next

	s.logger.Info().
		Str("item_id", itemID).
		Str("status", string(next)).
		Msg("Lost item status updated")

	return item, nil
}
