package dto

import (
	"time"

	"github.com/tanish/hostelhub/internal/app/models"
)

// FileComplaintRequest carries the fields of POST /complaint
type FileComplaintRequest struct {
	Description string  `json:"description" binding:"required"`
	HostelID    *string `json:"hostel_id"`
	DName       string  `json:"d_name" binding:"required"`
}

// FileComplaintResponse echoes the generated complaint id
type FileComplaintResponse struct {
	Message     string `json:"message"`
	ComplaintID string `json:"complaint_id"`
}

// UpdateComplaintStatusRequest carries the new status for PATCH
// /complaint/:complaint_id/status
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatusResponse echoes a status change
type UpdateStatusResponse struct {
	Message   string `json:"message"`
	ID        string `json:"id"`
	NewStatus string `json:"new_status"`
}

// DepartmentComplaint is a complaint joined with the filing student, as
// returned by GET /department-complaints
type DepartmentComplaint struct {
	ComplaintID   string                 `json:"complaint_id"`
	RollNo        string                 `json:"roll_no"`
	HostelID      *string                `json:"hostel_id"`
	DName         string                 `json:"d_name"`
	Status        models.ComplaintStatus `json:"status"`
	ComplaintDate time.Time              `json:"complaint_date"`
	Description   string                 `json:"description"`
	StudentName   string                 `json:"s_name"`
	ContactNo     string                 `json:"contact_no"`
	RoomNo        string                 `json:"room_no"`
}
