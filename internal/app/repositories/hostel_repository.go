package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/dberrors"
)

// HostelRepository handles database operations for hostels
type HostelRepository struct {
	db *pgxpool.Pool
}

// NewHostelRepository creates a new hostel repository
func NewHostelRepository(db *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{
		db: db,
	}
}

// Create persists a new hostel
func (r *HostelRepository) Create(ctx context.Context, hostel *models.Hostel) error {
	query := `
		INSERT INTO hostels (hostel_id, h_name, capacity, warden_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		hostel.HostelID, hostel.Name, hostel.Capacity, hostel.WardenID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hostels_pkey") {
			return apperrors.ErrHostelExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrWardenNotFound
		}
		return fmt.Errorf("error creating hostel: %w", err)
	}

	return nil
}

// GetByID retrieves a hostel by id
func (r *HostelRepository) GetByID(ctx context.Context, hostelID string) (*models.Hostel, error) {
	query := `
		SELECT hostel_id, h_name, capacity, warden_id
		FROM hostels
		WHERE hostel_id = $1
	`

	var hostel models.Hostel
	err := r.db.QueryRow(ctx, query, hostelID).Scan(
		&hostel.HostelID,
		&hostel.Name,
		&hostel.Capacity,
		&hostel.WardenID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}

	return &hostel, nil
}

// Occupancy counts the students currently referencing a hostel
func (r *HostelRepository) Occupancy(ctx context.Context, hostelID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE hostel_id = $1`, hostelID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting occupancy: %w", err)
	}

	return count, nil
}
