package models

// AuditLog records mutations (transaction and settings writes) for
// traceability. Recording is best-effort and never blocks the mutation.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resourceType"`
	ResourceID   string `gorm:"size:64" json:"resourceId"`
	IPAddress    string `json:"ipAddress"`
	Changes      string `json:"changes,omitempty"`
}
