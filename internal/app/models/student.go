package models

// Student defines the student model based on the 'students' table. Email and
// contact number are globally unique; HostelID is a weak reference cleared on
// hostel deletion.
type Student struct {
	RollNo        string  `json:"roll_no" db:"roll_no" example:"2110110123"`
	Name          string  `json:"s_name" db:"s_name" example:"A. Verma"`
	Dept          string  `json:"dept" db:"dept" example:"CSE"`
	Batch         int     `json:"batch" db:"batch" example:"2025"`
	ContactNo     string  `json:"contact_no" db:"contact_no" example:"9876501234"`
	Email         string  `json:"snu_email_id" db:"snu_email_id" example:"av123@snu.edu.in"`
	Password      string  `json:"-" db:"password"`
	RoomNo        string  `json:"room_no" db:"room_no" example:"A-112"`
	HostelID      *string `json:"hostel_id" db:"hostel_id"`
	ParentContact string  `json:"parent_contact" db:"parent_contact" example:"9123456780"`

	// Relations (populated when needed)
	Hostel *Hostel `json:"hostel,omitempty"`
}
