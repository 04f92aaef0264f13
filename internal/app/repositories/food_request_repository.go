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
	"github.com/tanish/hostelhub/internal/pkg/dberrors"
)

// FoodRequestRepository handles database operations for food requests
type FoodRequestRepository struct {
	db *pgxpool.Pool
}

// NewFoodRequestRepository creates a new food request repository
func NewFoodRequestRepository(db *pgxpool.Pool) *FoodRequestRepository {
	return &FoodRequestRepository{
		db: db,
	}
}

// Create persists a new food request. The caller-supplied code is the
// primary key, so a duplicate surfaces as a conflict.
func (r *FoodRequestRepository) Create(ctx context.Context, request *models.FoodRequest) error {
	query := `
		INSERT INTO food_requests (food_id, roll_no, hostel_id, type, date, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		request.FoodID, request.RollNo, request.HostelID, request.Type,
		request.Date, request.Status, request.Remarks)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "food_requests_pkey") {
			return apperrors.ErrFoodRequestExists
		}
		return fmt.Errorf("error creating food request: %w", err)
	}

	return nil
}

// GetByID retrieves a food request together with the warden owning its
// hostel (nil when the hostel reference was cleared or has no warden).
func (r *FoodRequestRepository) GetByID(ctx context.Context, foodID string) (*models.FoodRequest, *string, error) {
	query := `
		SELECT fr.food_id, fr.roll_no, fr.hostel_id, fr.type, fr.date, fr.status, fr.remarks, h.warden_id
		FROM food_requests fr
		LEFT JOIN hostels h ON fr.hostel_id = h.hostel_id
		WHERE fr.food_id = $1
	`

	var request models.FoodRequest
	var ownerWardenID *string
	err := r.db.QueryRow(ctx, query, foodID).Scan(
		&request.FoodID,
		&request.RollNo,
		&request.HostelID,
		&request.Type,
		&request.Date,
		&request.Status,
		&request.Remarks,
		&ownerWardenID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrFoodRequestNotFound
		}
		return nil, nil, fmt.Errorf("error retrieving food request: %w", err)
	}

	return &request, ownerWardenID, nil
}

// ListByRollNo retrieves a student's food requests with student and hostel
// names joined, newest date first.
func (r *FoodRequestRepository) ListByRollNo(ctx context.Context, rollNo string) ([]dto.StudentFoodRequest, error) {
	query := `
		SELECT fr.food_id, fr.roll_no, fr.hostel_id, fr.type, fr.date, fr.status, fr.remarks,
		       s.s_name, h.h_name
		FROM food_requests fr
		JOIN students s ON fr.roll_no = s.roll_no
		JOIN hostels h ON fr.hostel_id = h.hostel_id
		WHERE fr.roll_no = $1
		ORDER BY fr.date DESC, fr.food_id DESC
	`

	rows, err := r.db.Query(ctx, query, rollNo)
	if err != nil {
		return nil, fmt.Errorf("error listing food requests: %w", err)
	}
	defer rows.Close()

	requests := make([]dto.StudentFoodRequest, 0)
	for rows.Next() {
		var fr dto.StudentFoodRequest
		if err := rows.Scan(
			&fr.FoodID,
			&fr.RollNo,
			&fr.HostelID,
			&fr.Type,
			&fr.Date,
			&fr.Status,
			&fr.Remarks,
			&fr.StudentName,
			&fr.HostelName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, fr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListByWarden retrieves the food requests of every hostel the warden owns,
// with the filing student's name and room, newest date first.
func (r *FoodRequestRepository) ListByWarden(ctx context.Context, wardenID string) ([]dto.WardenFoodRequest, error) {
	query := `
		SELECT fr.food_id, fr.roll_no, fr.hostel_id, fr.type, fr.date, fr.status, fr.remarks,
		       s.s_name, s.room_no
		FROM food_requests fr
		JOIN students s ON fr.roll_no = s.roll_no
		JOIN hostels h ON fr.hostel_id = h.hostel_id
		WHERE h.warden_id = $1
		ORDER BY fr.date DESC, fr.food_id DESC
	`

	rows, err := r.db.Query(ctx, query, wardenID)
	if err != nil {
		return nil, fmt.Errorf("error listing warden food requests: %w", err)
	}
	defer rows.Close()

	requests := make([]dto.WardenFoodRequest, 0)
	for rows.Next() {
		var fr dto.WardenFoodRequest
		if err := rows.Scan(
			&fr.FoodID,
			&fr.RollNo,
			&fr.HostelID,
			&fr.Type,
			&fr.Date,
			&fr.Status,
			&fr.Remarks,
			&fr.StudentName,
			&fr.RoomNo,
		); err != nil {
			return nil, err
		}
		requests = append(requests, fr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus moves a food request from one status to another, optionally
// setting remarks. Compare-and-set on the previous status, see
// ComplaintRepository.UpdateStatus.
func (r *FoodRequestRepository) UpdateStatus(ctx context.Context, foodID string, from, to models.FoodRequestStatus, remarks *string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE food_requests SET status = $1, remarks = COALESCE($2, remarks) WHERE food_id = $3 AND status = $4`,
		to, remarks, foodID, from)
	if err != nil {
		return fmt.Errorf("error updating food request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM food_requests WHERE food_id = $1)`,
			foodID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking food request existence: %w", err)
		}
		if !exists {
			return apperrors.ErrFoodRequestNotFound
		}
		return apperrors.ErrConflict
	}

	return nil
}
