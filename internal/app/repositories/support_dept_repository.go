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

// SupportDeptRepository handles database operations for support departments
type SupportDeptRepository struct {
	db *pgxpool.Pool
}

// NewSupportDeptRepository creates a new support department repository
func NewSupportDeptRepository(db *pgxpool.Pool) *SupportDeptRepository {
	return &SupportDeptRepository{
		db: db,
	}
}

// Create persists a new support department admin. The department name is the
// primary key, so a second registration for the same department conflicts.
func (r *SupportDeptRepository) Create(ctx context.Context, dept *models.SupportDepartment) error {
	query := `
		INSERT INTO support_depts (d_name, warden_id, email, password, staff_capacity)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		dept.DName, dept.WardenID, dept.Email, dept.Password, dept.StaffCapacity)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "support_depts_pkey"):
			return apperrors.ErrDepartmentExists
		case dberrors.IsDuplicateConstraintError(err, "support_depts_email_key"):
			return apperrors.ErrEmailExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrWardenNotFound
		}
		return fmt.Errorf("error creating support department: %w", err)
	}

	return nil
}

// GetByEmail retrieves a support department admin by email
func (r *SupportDeptRepository) GetByEmail(ctx context.Context, email string) (*models.SupportDepartment, error) {
	query := `
		SELECT d_name, warden_id, email, password, staff_capacity
		FROM support_depts
		WHERE email = $1
	`

	var dept models.SupportDepartment
	err := r.db.QueryRow(ctx, query, email).Scan(
		&dept.DName,
		&dept.WardenID,
		&dept.Email,
		&dept.Password,
		&dept.StaffCapacity,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving support department: %w", err)
	}

	return &dept, nil
}

// Exists checks whether a support department record exists for a name
func (r *SupportDeptRepository) Exists(ctx context.Context, dName string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM support_depts WHERE d_name = $1)`, dName).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking support department existence: %w", err)
	}

	return exists, nil
}
