package domain

import "time"

// Session flag keys, carried over from the dashboard's storage keys.
const (
	FlagCurrentRole         = "tatvaops_current_role"
	FlagSelectedVendor      = "tatvaops_selected_vendor"
	FlagInspectionStatus    = "tatvaops_inspection_status"
	FlagMilestonesGenerated = "tatvaops_milestones_generated"
)

// SessionFlag is one persisted per-user flag. Every mutation is written
// through immediately; flags never expire and are only cleared explicitly.
type SessionFlag struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_session_user_key"`
	Key       string    `json:"key" gorm:"uniqueIndex:idx_session_user_key"`
	Value     string    `json:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InspectionStatus is the JSON payload stored under FlagInspectionStatus.
type InspectionStatus struct {
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}
