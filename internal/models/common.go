package models

import "time"

// AuditFields holds standard audit columns shared by all rows.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	LastUpdatedAt time.Time `db:"last_updated_at" json:"lastUpdatedAt"`
}
