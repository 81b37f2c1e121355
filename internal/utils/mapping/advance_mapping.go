package mapping

import (
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	"github.com/projworks/advance_ledger_app/internal/models"
)

// ToModelAdvance converts a domain AdvanceRecord to a model AdvanceRecord
func ToModelAdvance(d domain.AdvanceRecord) models.AdvanceRecord {
	settlements := make([]models.Settlement, len(d.Settlements))
	for i, s := range d.Settlements {
		settlements[i] = models.Settlement{
			SettlementID:   s.SettlementID,
			AdvanceID:      d.AdvanceID,
			Position:       i,
			InvoiceNumber:  s.InvoiceNumber,
			SettledAmount:  s.SettledAmount,
			SettlementDate: s.SettlementDate,
		}
	}
	return models.AdvanceRecord{
		AdvanceID:     d.AdvanceID,
		Population:    string(d.Population),
		ProjectID:     d.ProjectID,
		CustomerName:  d.CustomerName,
		AdvanceDate:   d.AdvanceDate,
		AdvanceAmount: d.AdvanceAmount,
		PaymentTerms:  d.PaymentTerms,
		Settlements:   settlements,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdvance converts a model AdvanceRecord to a domain AdvanceRecord
func ToDomainAdvance(m models.AdvanceRecord) domain.AdvanceRecord {
	settlements := make([]domain.Settlement, len(m.Settlements))
	for i, s := range m.Settlements {
		settlements[i] = domain.Settlement{
			SettlementID:   s.SettlementID,
			InvoiceNumber:  s.InvoiceNumber,
			SettledAmount:  s.SettledAmount,
			SettlementDate: s.SettlementDate,
		}
	}
	return domain.AdvanceRecord{
		AdvanceID:     m.AdvanceID,
		Population:    domain.Population(m.Population),
		ProjectID:     m.ProjectID,
		CustomerName:  m.CustomerName,
		AdvanceDate:   m.AdvanceDate,
		AdvanceAmount: m.AdvanceAmount,
		PaymentTerms:  m.PaymentTerms,
		Settlements:   settlements,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAdvanceSlice converts a slice of model AdvanceRecords to domain records
func ToDomainAdvanceSlice(ms []models.AdvanceRecord) []domain.AdvanceRecord {
	ds := make([]domain.AdvanceRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdvance(m)
	}
	return ds
}
