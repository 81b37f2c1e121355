package models

// Stage is the storage-facing shape of a production stage row.
type Stage struct {
	StageID string `db:"stage_id" json:"stageID"`
	Name    string `db:"name" json:"name"`
	Remarks string `db:"remarks" json:"remarks"`
	AuditFields
}
