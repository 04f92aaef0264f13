package services

import (
	"context"
	"strings"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
)

// HostelService handles hostel creation and lookups
type HostelService struct {
	hostels HostelStore
	wardens WardenStore
}

// NewHostelService creates a new hostel service instance
func NewHostelService(hostels HostelStore, wardens WardenStore) *HostelService {
	return &HostelService{
		hostels: hostels,
		wardens: wardens,
	}
}

// CreateHostel validates and persists a new hostel. A non-null warden
// reference must resolve; an empty one is normalized to null.
func (s *HostelService) CreateHostel(ctx context.Context, req dto.CreateHostelRequest) (*models.Hostel, error) {
	if strings.TrimSpace(req.HostelID) == "" || strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("hostel id and name are required")
	}
	if req.Capacity < 1 {
		return nil, apperrors.NewValidationError("capacity must be a positive number")
	}

	wardenID := req.WardenID
	if wardenID != nil && strings.TrimSpace(*wardenID) == "" {
		wardenID = nil
	}

	if wardenID != nil {
		exists, err := s.wardens.Exists(ctx, *wardenID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrWardenNotFound
		}
	}

	hostel := &models.Hostel{
		HostelID: req.HostelID,
		Name:     req.Name,
		Capacity: req.Capacity,
		WardenID: wardenID,
	}

	if err := s.hostels.Create(ctx, hostel); err != nil {
		return nil, err
	}

	return hostel, nil
}

// GetHostelByID retrieves a hostel by id
func (s *HostelService) GetHostelByID(ctx context.Context, hostelID string) (*models.Hostel, error) {
	return s.hostels.GetByID(ctx, hostelID)
}
