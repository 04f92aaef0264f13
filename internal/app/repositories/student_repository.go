package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/db"
	"github.com/tanish/hostelhub/internal/pkg/apperrors"
	"github.com/tanish/hostelhub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// CreateInHostel admits a student into a hostel. The hostel row is locked for
// the duration of the transaction so that the occupancy check and the insert
// cannot interleave with a concurrent admission: two admissions racing for
// the last bed serialize on the row lock and the loser sees the full count.
func (r *StudentRepository) CreateInHostel(ctx context.Context, student *models.Student) error {
	if student.HostelID == nil {
		return apperrors.ErrNoHostelAssigned
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var capacity int
		err := tx.QueryRow(ctx,
			`SELECT capacity FROM hostels WHERE hostel_id = $1 FOR UPDATE`,
			*student.HostelID).Scan(&capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrHostelNotFound
			}
			return fmt.Errorf("error locking hostel row: %w", err)
		}

		var occupancy int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM students WHERE hostel_id = $1`,
			*student.HostelID).Scan(&occupancy)
		if err != nil {
			return fmt.Errorf("error counting occupancy: %w", err)
		}

		if occupancy >= capacity {
			return apperrors.ErrCapacityExceeded
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO students
			(roll_no, s_name, dept, batch, contact_no, snu_email_id, password, room_no, hostel_id, parent_contact)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			student.RollNo, student.Name, student.Dept, student.Batch, student.ContactNo,
			student.Email, student.Password, student.RoomNo, student.HostelID, student.ParentContact)
		if err != nil {
			switch {
			case dberrors.IsDuplicateConstraintError(err, "students_pkey"):
				return apperrors.ErrRollNoExists
			case dberrors.IsDuplicateConstraintError(err, "students_snu_email_id_key"):
				return apperrors.ErrEmailExists
			case dberrors.IsDuplicateConstraintError(err, "students_contact_no_key"):
				return apperrors.ErrContactExists
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		return nil
	})
}

// GetByEmail retrieves a student by university email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getBy(ctx, "snu_email_id", email)
}

// GetByRollNo retrieves a student by roll number
func (r *StudentRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error) {
	return r.getBy(ctx, "roll_no", rollNo)
}

func (r *StudentRepository) getBy(ctx context.Context, column, value string) (*models.Student, error) {
	query := fmt.Sprintf(`
		SELECT roll_no, s_name, dept, batch, contact_no, snu_email_id, password, room_no, hostel_id, parent_contact
		FROM students
		WHERE %s = $1
	`, column)

	var student models.Student
	err := r.db.QueryRow(ctx, query, value).Scan(
		&student.RollNo,
		&student.Name,
		&student.Dept,
		&student.Batch,
		&student.ContactNo,
		&student.Email,
		&student.Password,
		&student.RoomNo,
		&student.HostelID,
		&student.ParentContact,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}
