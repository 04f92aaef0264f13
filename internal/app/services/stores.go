package services

import (
	"context"

	"github.com/tanish/hostelhub/internal/app/models"
	"github.com/tanish/hostelhub/internal/app/models/dto"
)

// Store interfaces consumed by the services in this package. The pgx
// repositories satisfy them; tests substitute in-memory fakes.

// WardenStore is the warden persistence surface
type WardenStore interface {
	Create(ctx context.Context, warden *models.Warden) error
	GetByEmail(ctx context.Context, email string) (*models.Warden, error)
	Exists(ctx context.Context, wardenID string) (bool, error)
}

// StudentStore is the student persistence surface. CreateInHostel enforces
// hostel existence, capacity, and uniqueness atomically.
type StudentStore interface {
	CreateInHostel(ctx context.Context, student *models.Student) error
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error)
}

// HostelStore is the hostel persistence surface
type HostelStore interface {
	Create(ctx context.Context, hostel *models.Hostel) error
	GetByID(ctx context.Context, hostelID string) (*models.Hostel, error)
}

// SupportDeptStore is the support department persistence surface
type SupportDeptStore interface {
	Create(ctx context.Context, dept *models.SupportDepartment) error
	GetByEmail(ctx context.Context, email string) (*models.SupportDepartment, error)
}

// ComplaintStore is the complaint persistence surface
type ComplaintStore interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, complaintID string) (*models.Complaint, error)
	ListByRollNo(ctx context.Context, rollNo string) ([]models.Complaint, error)
	ListByDepartment(ctx context.Context, dName string) ([]dto.DepartmentComplaint, error)
	UpdateStatus(ctx context.Context, complaintID string, from, to models.ComplaintStatus) error
}

// FoodRequestStore is the food request persistence surface
type FoodRequestStore interface {
	Create(ctx context.Context, request *models.FoodRequest) error
	GetByID(ctx context.Context, foodID string) (*models.FoodRequest, *string, error)
	ListByRollNo(ctx context.Context, rollNo string) ([]dto.StudentFoodRequest, error)
	ListByWarden(ctx context.Context, wardenID string) ([]dto.WardenFoodRequest, error)
	UpdateStatus(ctx context.Context, foodID string, from, to models.FoodRequestStatus, remarks *string) error
}

// LostItemStore is the lost and found persistence surface
type LostItemStore interface {
	Create(ctx context.Context, item *models.LostItem) error
	GetByID(ctx context.Context, itemID string) (*models.LostItem, error)
	List(ctx context.Context) ([]models.LostItem, error)
	UpdateStatus(ctx context.Context, itemID string, from, to models.LostItemStatus) error
}
