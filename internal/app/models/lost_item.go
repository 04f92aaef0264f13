package models

import "time"

// LostItemStatus enumerates lost-and-found item states.
type LostItemStatus string

const (
	ItemUnclaimed LostItemStatus = "Unclaimed"
	ItemClaimed   LostItemStatus = "Claimed"
	ItemReturned  LostItemStatus = "Returned"
)

// ParseLostItemStatus validates a raw status value.
func ParseLostItemStatus(s string) (LostItemStatus, bool) {
	switch LostItemStatus(s) {
	case ItemUnclaimed, ItemClaimed, ItemReturned:
		return LostItemStatus(s), true
	}
	return "", false
}

var lostItemTransitions = map[LostItemStatus][]LostItemStatus{
	ItemUnclaimed: {ItemClaimed},
	ItemClaimed:   {ItemReturned},
}

// CanTransitionTo reports whether the status graph allows moving from s to
// next. Repeating the current status is a no-op.
func (s LostItemStatus) CanTransitionTo(next LostItemStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range lostItemTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LostItem records a found item reported by a student. The reporter reference
// is weak.
type LostItem struct {
	ItemID        string         `json:"item_id" db:"item_id" example:"L1003"`
	RollNo        *string        `json:"roll_no" db:"roll_no"`
	ItemName      string         `json:"item_name" db:"item_name" example:"Black umbrella"`
	FoundLocation string         `json:"found_location" db:"found_location" example:"Mess hall"`
	ReportDate    time.Time      `json:"report_date" db:"report_date"`
	Status        LostItemStatus `json:"status" db:"status" example:"Unclaimed"`
}
