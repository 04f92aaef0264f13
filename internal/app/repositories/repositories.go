package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	WardenRepository      *WardenRepository
	StudentRepository     *StudentRepository
	HostelRepository      *HostelRepository
	SupportDeptRepository *SupportDeptRepository
	ComplaintRepository   *ComplaintRepository
	FoodRequestRepository *FoodRequestRepository
	LostItemRepository    *LostItemRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		WardenRepository:      NewWardenRepository(db),
		StudentRepository:     NewStudentRepository(db),
		HostelRepository:      NewHostelRepository(db),
		SupportDeptRepository: NewSupportDeptRepository(db),
		ComplaintRepository:   NewComplaintRepository(db),
		FoodRequestRepository: NewFoodRequestRepository(db),
		LostItemRepository:    NewLostItemRepository(db),
	}
}
