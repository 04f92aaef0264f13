package models

// Hostel represents a hostel building. WardenID is a weak reference: deleting
// the warden clears it, the hostel record survives.
type Hostel struct {
	HostelID string  `json:"hostel_id" db:"hostel_id" example:"H1"`
	Name     string  `json:"h_name" db:"h_name" example:"Himalaya"`
	Capacity int     `json:"capacity" db:"capacity" example:"200"`
	WardenID *string `json:"warden_id" db:"warden_id"`

	// Relations (populated when needed)
	Warden *Warden `json:"warden,omitempty"`
}
