package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
)

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db *pgxpool.Pool
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

// Create persists a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints
		(complaint_id, roll_no, hostel_id, d_name, status, complaint_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		complaint.ComplaintID, complaint.RollNo, complaint.HostelID, complaint.DName,
		complaint.Status, complaint.ComplaintDate, complaint.Description)
	if err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// GetByID retrieves a complaint by id
func (r *ComplaintRepository) GetByID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	query := `
		SELECT complaint_id, roll_no, hostel_id, d_name, status, complaint_date, description
		FROM complaints
		WHERE complaint_id = $1
	`

	var complaint models.Complaint
	err := r.db.QueryRow(ctx, query, complaintID).Scan(
		&complaint.ComplaintID,
		&complaint.RollNo,
		&complaint.HostelID,
		&complaint.DName,
		&complaint.Status,
		&complaint.ComplaintDate,
		&complaint.Description,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return &complaint, nil
}

// ListByRollNo retrieves all complaints filed by a student, newest first
func (r *ComplaintRepository) ListByRollNo(ctx context.Context, rollNo string) ([]models.Complaint, error) {
	query := `
		SELECT complaint_id, roll_no, hostel_id, d_name, status, complaint_date, description
		FROM complaints
		WHERE roll_no = $1
		ORDER BY complaint_date DESC, complaint_id DESC
	`

	rows, err := r.db.Query(ctx, query, rollNo)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}
	defer rows.Close()

	complaints := make([]models.Complaint, 0)
	for rows.Next() {
		var complaint models.Complaint
		if err := rows.Scan(
			&complaint.ComplaintID,
			&complaint.RollNo,
			&complaint.HostelID,
			&complaint.DName,
			&complaint.Status,
			&complaint.ComplaintDate,
			&complaint.Description,
		); err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

// ListByDepartment retrieves a department's complaints joined with the filing
// student, newest first. Complaints whose filer was deleted drop out of the
// join, matching the department view being a work queue over live students.
func (r *ComplaintRepository) ListByDepartment(ctx context.Context, dName string) ([]dto.DepartmentComplaint, error) {
	query := `
		SELECT c.complaint_id, c.roll_no, c.hostel_id, c.d_name, c.status, c.complaint_date, c.description,
		       s.s_name, s.contact_no, s.room_no
		FROM complaints c
		JOIN students s ON c.roll_no = s.roll_no
		WHERE c.d_name = $1
		ORDER BY c.complaint_date DESC, c.complaint_id DESC
	`

	rows, err := r.db.Query(ctx, query, dName)
	if err != nil {
		return nil, fmt.Errorf("error listing department complaints: %w", err)
	}
	defer rows.Close()

	complaints := make([]dto.DepartmentComplaint, 0)
	for rows.Next() {
		var c dto.DepartmentComplaint
		if err := rows.Scan(
			&c.ComplaintID,
			&c.RollNo,
			&c.HostelID,
			&c.DName,
			&c.Status,
			&c.ComplaintDate,
			&c.Description,
			&c.StudentName,
			&c.ContactNo,
			&c.RoomNo,
		); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

// UpdateStatus moves a complaint from one status to another. The previous
// status is part of the WHERE clause, so a concurrent update that already
// moved the row makes this a no-op and the caller sees ErrConflict instead
// of silently overwriting.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, complaintID string, from, to models.ComplaintStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE complaints SET status = $1 WHERE complaint_id = $2 AND status = $3`,
		to, complaintID, from)
	if err != nil {
		return fmt.Errorf("error updating complaint status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM complaints WHERE complaint_id = $1)`,
			complaintID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking complaint existence: %w", err)
		}
		if !exists {
			return apperrors.ErrComplaintNotFound
		}
		return apperrors.ErrConflict
	}

	return nil
}
