package models

import "time"

// Project is the storage-facing shape of a project row.
type Project struct {
	ProjectID       string     `db:"project_id" json:"projectID"`
	ProjectNo       string     `db:"project_no" json:"projectNo"`
	ProjectName     string     `db:"project_name" json:"projectName"`
	CustomerName    string     `db:"customer_name" json:"customerName"`
	Owner           string     `db:"owner" json:"owner"`
	ProjectDate     *time.Time `db:"project_date" json:"projectDate"`
	TargetDate      *time.Time `db:"target_date" json:"targetDate"`
	DispatchMonth   string     `db:"dispatch_month" json:"dispatchMonth"`
	ProductionStage string     `db:"production_stage" json:"productionStage"`
	Remarks         string     `db:"remarks" json:"remarks"`
	AuditFields
}
