package models

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionAdjust AuditAction = "ADJUST"
)

// AuditLog is append-only: one entry per accepted mutation, newest first.
type AuditLog struct {
	ID       string      `json:"id"`
	Module   string      `json:"module"`
	Action   AuditAction `json:"action"`
	OldValue string      `json:"oldValue"`
	NewValue string      `json:"newValue"`
	User     string      `json:"user"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
}
