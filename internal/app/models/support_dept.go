package models

// DepartmentName is the closed set of support departments. At most one
// support admin record exists per value.
type DepartmentName string

const (
	DeptMaintenance  DepartmentName = "Maintenance"
	DeptPestControl  DepartmentName = "Pest-control"
	DeptHousekeeping DepartmentName = "Housekeeping"
	DeptIT           DepartmentName = "IT"
)

// DepartmentNames lists all valid support departments.
var DepartmentNames = []DepartmentName{DeptMaintenance, DeptPestControl, DeptHousekeeping, DeptIT}

// IsValidDepartment reports whether name is one of the closed enum values.
func IsValidDepartment(name string) bool {
	for _, d := range DepartmentNames {
		if string(d) == name {
			return true
		}
	}
	return false
}

// SupportDepartment defines the support department admin account, keyed by
// the department name. The warden link is optional and weak.
type SupportDepartment struct {
	DName         DepartmentName `json:"d_name" db:"d_name" example:"Maintenance"`
	WardenID      *string        `json:"warden_id" db:"warden_id"`
	Email         string         `json:"email" db:"email" example:"maintenance@snu.edu.in"`
	Password      string         `json:"-" db:"password"`
	StaffCapacity int            `json:"staff_capacity" db:"staff_capacity" example:"12"`
}
