package dto

import (
	"time"

	"github.com/tanish/hostelhub/internal/app/models"
)

// FileFoodRequestRequest carries the fields of POST /foodrequest. Date uses
// the YYYY-MM-DD wire format.
type FileFoodRequestRequest struct {
	FoodID string `json:"food_id" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

// FileFoodRequestResponse echoes the created request
type FileFoodRequestResponse struct {
	Message string          `json:"message"`
	Request FoodRequestEcho `json:"request"`
}

// FoodRequestEcho is the creation echo body
type FoodRequestEcho struct {
	FoodID string                   `json:"food_id"`
	Type   models.MealType          `json:"type"`
	Date   string                   `json:"date"`
	Status models.FoodRequestStatus `json:"status"`
}

// UpdateFoodStatusRequest carries the new status for PATCH
// /foodrequest/:food_id/status
type UpdateFoodStatusRequest struct {
	Status  string  `json:"status" binding:"required"`
	Remarks *string `json:"remarks"`
}

// StudentFoodRequest is a food request joined with student and hostel names,
// as returned by GET /foodrequest/student
type StudentFoodRequest struct {
	FoodID      string                   `json:"food_id"`
	RollNo      string                   `json:"roll_no"`
	HostelID    *string                  `json:"hostel_id"`
	Type        models.MealType          `json:"type"`
	Date        time.Time                `json:"date"`
	Status      models.FoodRequestStatus `json:"status"`
	Remarks     *string                  `json:"remarks,omitempty"`
	StudentName string                   `json:"s_name"`
	HostelName  string                   `json:"h_name"`
}

// WardenFoodRequest is a food request joined with the filing student's name
// and room, as returned by GET /foodrequests
type WardenFoodRequest struct {
	FoodID      string                   `json:"food_id"`
	RollNo      string                   `json:"roll_no"`
	HostelID    *string                  `json:"hostel_id"`
	Type        models.MealType          `json:"type"`
	Date        time.Time                `json:"date"`
	Status      models.FoodRequestStatus `json:"status"`
	Remarks     *string                  `json:"remarks,omitempty"`
	StudentName string                   `json:"s_name"`
	RoomNo      string                   `json:"room_no"`
}
