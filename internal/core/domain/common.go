package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Timestamps are stored in UTC; any display-timezone conversion belongs
// to the presentation layer.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
