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

// LostItemRepository handles database operations for lost and found items
type LostItemRepository struct {
	db *pgxpool.Pool
}

// NewLostItemRepository creates a new lost item repository
func NewLostItemRepository(db *pgxpool.Pool) *LostItemRepository {
	return &LostItemRepository{
		db: db,
	}
}

// Create persists a newly reported item
func (r *LostItemRepository) Create(ctx context.Context, item *models.LostItem) error {
	query := `
		INSERT INTO lost_and_found (item_id, roll_no, item_name, found_location, report_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		item.ItemID, item.RollNo, item.ItemName, item.FoundLocation, item.ReportDate, item.Status)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "lost_and_found_pkey") {
			return apperrors.ErrItemExists
		}
		return fmt.Errorf("error creating lost item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by id
func (r *LostItemRepository) GetByID(ctx context.Context, itemID string) (*models.LostItem, error) {
	query := `
		SELECT item_id, roll_no, item_name, found_location, report_date, status
		FROM lost_and_found
		WHERE item_id = $1
	`

	var item models.LostItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ItemID,
		&item.RollNo,
		&item.ItemName,
		&item.FoundLocation,
		&item.ReportDate,
		&item.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("error retrieving lost item: %w", err)
	}

	return &item, nil
}

// List retrieves all reported items, newest first
func (r *LostItemRepository) List(ctx context.Context) ([]models.LostItem, error) {
	query := `
		SELECT item_id, roll_no, item_name, found_location, report_date, status
		FROM lost_and_found
		ORDER BY report_date DESC, item_id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing lost items: %w", err)
	}
	defer rows.Close()

	items := make([]models.LostItem, 0)
	for rows.Next() {
		var item models.LostItem
		if err := rows.Scan(
			&item.ItemID,
			&item.RollNo,
			&item.ItemName,
			&item.FoundLocation,
			&item.ReportDate,
			&item.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateStatus moves an item from one status to another, compare-and-set on
// the previous status.
func (r *LostItemRepository) UpdateStatus(ctx context.Context, itemID string, from, to models.LostItemStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE lost_and_found SET status = $1 WHERE item_id = $2 AND status = $3`,
		to, itemID, from)
	if err != nil {
		return fmt.Errorf("error updating lost item status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM lost_and_found WHERE item_id = $1)`,
			itemID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking lost item existence: %w", err)
		}
		if !exists {
			return apperrors.ErrItemNotFound
		}
		return apperrors.ErrConflict
	}

	return nil
}
