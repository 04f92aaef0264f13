package models

// Warden defines the warden model based on the 'wardens' table
type Warden struct {
	WardenID  string `json:"warden_id" db:"warden_id" example:"W101"`
	Name      string `json:"w_name" db:"w_name" example:"R. Sharma"`
	Email     string `json:"email" db:"email" example:"sharma@snu.edu.in"`
	Password  string `json:"-" db:"password"`
	ContactNo string `json:"contact_no" db:"contact_no" example:"9876543210"`
}
