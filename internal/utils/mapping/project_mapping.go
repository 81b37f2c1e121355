package mapping

import (
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:       d.ProjectID,
		ProjectNo:       d.ProjectNo,
		ProjectName:     d.ProjectName,
		CustomerName:    d.CustomerName,
		Owner:           d.Owner,
		ProjectDate:     d.ProjectDate,
		TargetDate:      d.TargetDate,
		DispatchMonth:   d.DispatchMonth,
		ProductionStage: d.ProductionStage,
		Remarks:         d.Remarks,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:       m.ProjectID,
		ProjectNo:       m.ProjectNo,
		ProjectName:     m.ProjectName,
		CustomerName:    m.CustomerName,
		Owner:           m.Owner,
		ProjectDate:     m.ProjectDate,
		TargetDate:      m.TargetDate,
		DispatchMonth:   m.DispatchMonth,
		ProductionStage: m.ProductionStage,
		Remarks:         m.Remarks,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStage converts a domain Stage to a model Stage
func ToModelStage(d domain.Stage) models.Stage {
	return models.Stage{
		StageID:     d.StageID,
		Name:        d.Name,
		Remarks:     d.Remarks,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStage converts a model Stage to a domain Stage
func ToDomainStage(m models.Stage) domain.Stage {
	return domain.Stage{
		StageID:     m.StageID,
		Name:        m.Name,
		Remarks:     m.Remarks,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
