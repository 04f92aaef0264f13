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

// WardenRepository handles database operations for wardens
type WardenRepository struct {
	db *pgxpool.Pool
}

// NewWardenRepository creates a new warden repository
func NewWardenRepository(db *pgxpool.Pool) *WardenRepository {
	return &WardenRepository{
		db: db,
	}
}

// Create persists a new warden
func (r *WardenRepository) Create(ctx context.Context, warden *models.Warden) error {
	query := `
		INSERT INTO wardens (warden_id, w_name, email, password, contact_no)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		warden.WardenID, warden.Name, warden.Email, warden.Password, warden.ContactNo)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "wardens_pkey"):
			return apperrors.ErrWardenExists
		case dberrors.IsDuplicateConstraintError(err, "wardens_email_key"):
			return apperrors.ErrEmailExists
		case dberrors.IsDuplicateConstraintError(err, "wardens_contact_no_key"):
			return apperrors.ErrContactExists
		}
		return fmt.Errorf("error creating warden: %w", err)
	}

	return nil
}

// GetByEmail retrieves a warden by email
func (r *WardenRepository) GetByEmail(ctx context.Context, email string) (*models.Warden, error) {
	query := `
		SELECT warden_id, w_name, email, password, contact_no
		FROM wardens
		WHERE email = $1
	`

	var warden models.Warden
	err := r.db.QueryRow(ctx, query, email).Scan(
		&warden.WardenID,
		&warden.Name,
		&warden.Email,
		&warden.Password,
		&warden.ContactNo,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWardenNotFound
		}
		return nil, fmt.Errorf("error retrieving warden: %w", err)
	}

	return &warden, nil
}

// GetByID retrieves a warden by id
func (r *WardenRepository) GetByID(ctx context.Context, wardenID string) (*models.Warden, error) {
	query := `
		SELECT warden_id, w_name, email, password, contact_no
		FROM wardens
		WHERE warden_id = $1
	`

	var warden models.Warden
	err := r.db.QueryRow(ctx, query, wardenID).Scan(
		&warden.WardenID,
		&warden.Name,
		&warden.Email,
		&warden.Password,
		&warden.ContactNo,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWardenNotFound
		}
		return nil, fmt.Errorf("error retrieving warden: %w", err)
	}

	return &warden, nil
}

// Exists checks whether a warden id resolves to a row
func (r *WardenRepository) Exists(ctx context.Context, wardenID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM wardens WHERE warden_id = $1)`, wardenID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking warden existence: %w", err)
	}

	return exists, nil
}
