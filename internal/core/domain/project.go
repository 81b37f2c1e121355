package domain

import "time"

// Project is a plain CRUD entity. Advances reference it by ID and borrow its
// display fields (number, name, customer) when listed.
type Project struct {
	ProjectID       string     `json:"projectID"`
	ProjectNo       string     `json:"projectNo"`
	ProjectName     string     `json:"projectName"`
	CustomerName    string     `json:"customerName"`
	Owner           string     `json:"owner"`
	ProjectDate     *time.Time `json:"projectDate"`
	TargetDate      *time.Time `json:"targetDate"`
	DispatchMonth   string     `json:"dispatchMonth"`
	ProductionStage string     `json:"productionStage"`
	Remarks         string     `json:"remarks"`
	AuditFields
}

// ProjectRef is the subset of project fields used to enrich advance listings.
type ProjectRef struct {
	ProjectNo    string `json:"projectNo"`
	ProjectName  string `json:"projectName"`
	CustomerName string `json:"customerName"`
}
