// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	RequestID     string          `json:"request_id,omitempty"`
	UserID        int64           `json:"user_id"`
	UserRole      string          `json:"user_role"`
	Action        string          `json:"action"`
	ResourceType  string          `json:"resource_type"`
	ResourceID    int64           `json:"resource_id"`
	AccessGranted bool            `json:"access_granted"`
	Rule          string          `json:"rule,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Field         string          `json:"field,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Query narrows an audit search. Zero ids match everything.
type Query struct {
	From       time.Time
	To         time.Time
	UserID     int64
	ResourceID int64
	Action     string
	Size       int
}

const (
	DefaultQuerySize = 50
	MaxQuerySize     = 1000
)

// Normalize clamps Size into 1..MaxQuerySize.
func (q *Query) Normalize() {
	switch {
	case q.Size <= 0:
		q.Size = DefaultQuerySize
	case q.Size > MaxQuerySize:
		q.Size = MaxQuerySize
	}
}

// Valid reports whether the time window is ordered.
func (q Query) Valid() bool {
	return q.From.IsZero() || q.To.IsZero() || !q.To.Before(q.From)
}
