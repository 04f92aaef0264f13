package dto

// CreateHostelRequest carries the fields of POST /createHostel
type CreateHostelRequest struct {
	HostelID string  `json:"hostel_id" binding:"required"`
	Name     string  `json:"h_name" binding:"required"`
	Capacity int     `json:"capacity" binding:"required"`
	WardenID *string `json:"warden_id"`
}
