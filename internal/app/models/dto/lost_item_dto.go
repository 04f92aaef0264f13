package dto

// ReportLostItemRequest carries the fields of POST /lostfound
type ReportLostItemRequest struct {
	ItemID        string `json:"item_id" binding:"required"`
	ItemName      string `json:"item_name" binding:"required"`
	FoundLocation string `json:"found_location" binding:"required"`
}

// UpdateLostItemStatusRequest carries the new status for PATCH
// /lostfound/:item_id/status
type UpdateLostItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
