package models

import "time"

// ComplaintStatus enumerates complaint lifecycle states.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "Pending"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
	ComplaintRejected   ComplaintStatus = "Rejected"
)

// ParseComplaintStatus validates a raw status value.
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	switch ComplaintStatus(s) {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintRejected:
		return ComplaintStatus(s), true
	}
	return "", false
}

// complaintTransitions is the allowed edge set. Resolved and Rejected are
// terminal.
var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintPending:    {ComplaintInProgress, ComplaintRejected},
	ComplaintInProgress: {ComplaintResolved, ComplaintRejected},
}

// CanTransitionTo reports whether the status graph allows moving from s to
// next. Re-asserting the current status is allowed as a no-op.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined out of s.
func (s ComplaintStatus) IsTerminal() bool {
	return len(complaintTransitions[s]) == 0
}

// Complaint references its filer and hostel weakly: both survive deletion of
// the referenced row with the reference cleared.
type Complaint struct {
	ComplaintID   string          `json:"complaint_id" db:"complaint_id"`
	RollNo        *string         `json:"roll_no" db:"roll_no"`
	HostelID      *string         `json:"hostel_id" db:"hostel_id"`
	DName         string          `json:"d_name" db:"d_name" example:"Maintenance"`
	Status        ComplaintStatus `json:"status" db:"status" example:"Pending"`
	ComplaintDate time.Time       `json:"complaint_date" db:"complaint_date"`
	Description   string          `json:"description" db:"description"`
}
