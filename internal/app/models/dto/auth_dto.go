package dto

// RegisterWardenRequest carries the fields of POST /createWarden
type RegisterWardenRequest struct {
	WardenID  string `json:"warden_id" binding:"required"`
	Name      string `json:"w_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	ContactNo string `json:"contact_no" binding:"required"`
}

// RegisterStudentRequest carries the fields of POST /createStudent
type RegisterStudentRequest struct {
	RollNo        string `json:"roll_no" binding:"required"`
	Name          string `json:"s_name" binding:"required"`
	Dept          string `json:"dept" binding:"required"`
	Batch         int    `json:"batch" binding:"required"`
	ContactNo     string `json:"contact_no" binding:"required"`
	Email         string `json:"snu_email_id" binding:"required"`
	Password      string `json:"password" binding:"required"`
	RoomNo        string `json:"room_no" binding:"required"`
	HostelID      string `json:"hostel_id" binding:"required"`
	ParentContact string `json:"parent_contact" binding:"required"`
}

// RegisterSupportAdminRequest carries the fields of POST /createSupportAdmin
type RegisterSupportAdminRequest struct {
	DName         string  `json:"D_Name" binding:"required"`
	WardenID      *string `json:"warden_id"`
	Email         string  `json:"email" binding:"required"`
	Password      string  `json:"password" binding:"required"`
	StaffCapacity int     `json:"staff_capacity" binding:"required"`
}

// LoginWardenRequest carries warden login credentials
type LoginWardenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginStudentRequest carries student login credentials. The email field name
// matches the students table column.
type LoginStudentRequest struct {
	Email    string `json:"snu_email_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginSupportAdminRequest carries support admin login credentials
type LoginSupportAdminRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUserData is the identity echo returned with a student login
type LoginUserData struct {
	RollNo string `json:"roll_no"`
	Name   string `json:"name"`
}

// LoginResponse is the common login success shape for all three roles
type LoginResponse struct {
	Success bool           `json:"success"`
	Token   string         `json:"token"`
	User    *LoginUserData `json:"userData,omitempty"`
}
