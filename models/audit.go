package models

// AuditSourceUI tags audit contexts produced by the client application.
const AuditSourceUI = "ui"

// AuditContext is per-operation metadata bound to the database connection
// right before a mutating call, so that the audit trail can attribute the
// change to an end user and session.
type AuditContext struct {
	UserID       string  `json:"user_id"`
	Login        string  `json:"login"`
	Email        string  `json:"email"`
	Chiropractor string  `json:"chiropractor"`
	Source       string  `json:"source"`
	SessionID    string  `json:"session_id"`
	IPAddress    *string `json:"ip_address"`
	UserAgent    string  `json:"user_agent"`
}
