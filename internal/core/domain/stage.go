package domain

// Stage is a production stage label, plain CRUD.
type Stage struct {
	StageID string `json:"stageID"`
	Name    string `json:"name"`
	Remarks string `json:"remarks"`
	AuditFields
}
