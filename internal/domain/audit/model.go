package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is an append-only record of a successful mutation.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint           `gorm:"column:user_id;index" json:"user_id"`
	Action       string         `gorm:"column:action;size:32;not null" json:"action"`
	ResourceType string         `gorm:"column:resource_type;size:32;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"column:resource_id;size:64;not null" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"column:old_data" json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `gorm:"column:new_data" json:"new_data,omitempty" swaggertype:"object"`
	IPAddress    string         `gorm:"column:ip_address;size:64" json:"ip_address"`
	UserAgent    string         `gorm:"column:user_agent" json:"user_agent"`
	RequestID    string         `gorm:"column:request_id;size:64" json:"request_id"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
