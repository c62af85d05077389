package entities

import "time"

type AuditEventType string

const (
	AuditEventAuth    AuditEventType = "auth"
	AuditEventContent AuditEventType = "content"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent records a mutating API request or an authentication attempt.
type AuditEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	EventType AuditEventType `gorm:"index;size:50" json:"event_type"`
	Action    string         `gorm:"size:100" json:"action"` // e.g. "login", "chapter_delete"
	Method    string         `gorm:"size:10" json:"method"`
	Path      string         `gorm:"size:512" json:"path"`
	Status    AuditStatus    `gorm:"size:20" json:"status"`
	HTTPCode  int            `json:"http_code"`
	IPAddress string         `gorm:"size:45" json:"ip_address,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
