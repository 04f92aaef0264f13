package models

import "time"

// MealType enumerates the meals a food request can target.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// ParseMealType validates a raw meal type value.
func ParseMealType(s string) (MealType, bool) {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner:
		return MealType(s), true
	}
	return "", false
}

// FoodRequestStatus enumerates food request lifecycle states.
type FoodRequestStatus string

const (
	FoodPending  FoodRequestStatus = "Pending"
	FoodApproved FoodRequestStatus = "Approved"
	FoodRejected FoodRequestStatus = "Rejected"
)

// ParseFoodRequestStatus validates a raw status value.
func ParseFoodRequestStatus(s string) (FoodRequestStatus, bool) {
	switch FoodRequestStatus(s) {
	case FoodPending, FoodApproved, FoodRejected:
		return FoodRequestStatus(s), true
	}
	return "", false
}

var foodTransitions = map[FoodRequestStatus][]FoodRequestStatus{
	FoodPending: {FoodApproved, FoodRejected},
}

// CanTransitionTo reports whether the status graph allows moving from s to
// next. Approved and Rejected are terminal; repeating the current status is a
// no-op.
func (s FoodRequestStatus) CanTransitionTo(next FoodRequestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range foodTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined out of s.
func (s FoodRequestStatus) IsTerminal() bool {
	return len(foodTransitions[s]) == 0
}

// FoodRequest is keyed by a caller-supplied 4-digit code. The hostel
// reference is a snapshot of the student's hostel at filing time and is not
// re-validated afterwards.
type FoodRequest struct {
	FoodID   string            `json:"food_id" db:"food_id" example:"1042"`
	RollNo   *string           `json:"roll_no" db:"roll_no"`
	HostelID *string           `json:"hostel_id" db:"hostel_id"`
	Type     MealType          `json:"type" db:"type" example:"Lunch"`
	Date     time.Time         `json:"date" db:"date"`
	Status   FoodRequestStatus `json:"status" db:"status" example:"Pending"`
	Remarks  *string           `json:"remarks,omitempty" db:"remarks"`
}
