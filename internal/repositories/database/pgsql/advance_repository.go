package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	"github.com/projworks/advance_ledger_app/internal/models"
	"github.com/projworks/advance_ledger_app/internal/utils/mapping"
)

// PgxAdvanceRepository persists advances and their settlement rows. Both
// populations live in one table behind a population discriminator column;
// settlements are child rows ordered by position. Balances are never stored,
// only the raw settlement sequence.
type PgxAdvanceRepository struct {
	BaseRepository
}

// newPgxAdvanceRepository creates a new repository for advance data.
func newPgxAdvanceRepository(pool *pgxpool.Pool) portsrepo.AdvanceRepositoryFacade {
	return &PgxAdvanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AdvanceRepositoryFacade = (*PgxAdvanceRepository)(nil)

const advanceColumns = `advance_id, population, project_id, customer_name, advance_date, advance_amount, payment_terms, created_at, last_updated_at`

func scanAdvance(row pgx.Row) (models.AdvanceRecord, error) {
	var m models.AdvanceRecord
	err := row.Scan(
		&m.AdvanceID,
		&m.Population,
		&m.ProjectID,
		&m.CustomerName,
		&m.AdvanceDate,
		&m.AdvanceAmount,
		&m.PaymentTerms,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// ListAdvances retrieves every record of one population, settlements
// included, in creation order.
func (r *PgxAdvanceRepository) ListAdvances(ctx context.Context, population domain.Population) ([]domain.AdvanceRecord, error) {
	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE population = $1
		ORDER BY created_at, advance_id;
	`
	rows, err := r.Pool.Query(ctx, query, string(population))
	if err != nil {
		return nil, fmt.Errorf("failed to query advances: %w", err)
	}
	defer rows.Close()

	modelAdvances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AdvanceRecord, error) {
		return scanAdvance(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan advances: %w", err)
	}

	if err := r.attachSettlements(ctx, modelAdvances); err != nil {
		return nil, err
	}

	return mapping.ToDomainAdvanceSlice(modelAdvances), nil
}

// FindAdvanceByID retrieves a single advance with its settlements.
func (r *PgxAdvanceRepository) FindAdvanceByID(ctx context.Context, population domain.Population, advanceID string) (*domain.AdvanceRecord, error) {
	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE population = $1 AND advance_id = $2;
	`
	m, err := scanAdvance(r.Pool.QueryRow(ctx, query, string(population), advanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find advance %s: %w", advanceID, err)
	}

	settlements, err := r.loadSettlements(ctx, advanceID)
	if err != nil {
		return nil, err
	}
	m.Settlements = settlements

	domainAdvance := mapping.ToDomainAdvance(m)
	return &domainAdvance, nil
}

// attachSettlements loads the settlement rows of every listed advance in one
// query and distributes them by advance ID.
func (r *PgxAdvanceRepository) attachSettlements(ctx context.Context, advances []models.AdvanceRecord) error {
	if len(advances) == 0 {
		return nil
	}
	ids := make([]string, len(advances))
	for i := range advances {
		ids[i] = advances[i].AdvanceID
	}

	query := `
		SELECT settlement_id, advance_id, position, invoice_number, settled_amount, settlement_date
		FROM settlements
		WHERE advance_id = ANY($1)
		ORDER BY advance_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query settlements: %w", err)
	}
	defer rows.Close()

	byAdvance := make(map[string][]models.Settlement)
	for rows.Next() {
		var s models.Settlement
		if err := rows.Scan(&s.SettlementID, &s.AdvanceID, &s.Position, &s.InvoiceNumber, &s.SettledAmount, &s.SettlementDate); err != nil {
			return fmt.Errorf("failed to scan settlement: %w", err)
		}
		byAdvance[s.AdvanceID] = append(byAdvance[s.AdvanceID], s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read settlements: %w", err)
	}

	for i := range advances {
		advances[i].Settlements = byAdvance[advances[i].AdvanceID]
	}
	return nil
}

func (r *PgxAdvanceRepository) loadSettlements(ctx context.Context, advanceID string) ([]models.Settlement, error) {
	query := `
		SELECT settlement_id, advance_id, position, invoice_number, settled_amount, settlement_date
		FROM settlements
		WHERE advance_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlements for advance %s: %w", advanceID, err)
	}
	defer rows.Close()

	settlements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Settlement, error) {
		var s models.Settlement
		err := row.Scan(&s.SettlementID, &s.AdvanceID, &s.Position, &s.InvoiceNumber, &s.SettledAmount, &s.SettlementDate)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settlements for advance %s: %w", advanceID, err)
	}
	return settlements, nil
}

// SaveAdvance inserts a new advance record with its settlements.
func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, record domain.AdvanceRecord) error {
	m := mapping.ToModelAdvance(record)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO advances (` + advanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		m.AdvanceID,
		m.Population,
		m.ProjectID,
		m.CustomerName,
		m.AdvanceDate,
		m.AdvanceAmount,
		m.PaymentTerms,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert advance %s: %w", m.AdvanceID, err)
	}

	if err := insertSettlements(ctx, tx, m.Settlements); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateAdvance replaces the stored record, settlements included. The
// settlement rows are rewritten wholesale; diffing individual rows buys
// nothing at this scale.
func (r *PgxAdvanceRepository) UpdateAdvance(ctx context.Context, record domain.AdvanceRecord) error {
	m := mapping.ToModelAdvance(record)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE advances
		SET project_id = $1, customer_name = $2, advance_date = $3, advance_amount = $4, payment_terms = $5, last_updated_at = $6
		WHERE population = $7 AND advance_id = $8;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.ProjectID,
		m.CustomerName,
		m.AdvanceDate,
		m.AdvanceAmount,
		m.PaymentTerms,
		m.LastUpdatedAt,
		m.Population,
		m.AdvanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update advance %s: %w", m.AdvanceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM settlements WHERE advance_id = $1;`, m.AdvanceID); err != nil {
		return fmt.Errorf("failed to clear settlements for advance %s: %w", m.AdvanceID, err)
	}
	if err := insertSettlements(ctx, tx, m.Settlements); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteAdvance removes the record; settlements cascade via FK.
func (r *PgxAdvanceRepository) DeleteAdvance(ctx context.Context, population domain.Population, advanceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM advances WHERE population = $1 AND advance_id = $2;`, string(population), advanceID)
	if err != nil {
		return fmt.Errorf("failed to delete advance %s: %w", advanceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func insertSettlements(ctx context.Context, tx pgx.Tx, settlements []models.Settlement) error {
	if len(settlements) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO settlements (settlement_id, advance_id, position, invoice_number, settled_amount, settlement_date)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, s := range settlements {
		batch.Queue(query,
			s.SettlementID,
			s.AdvanceID,
			s.Position,
			s.InvoiceNumber,
			s.SettledAmount,
			s.SettlementDate,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute settlement batch: %w", err)
	}
	return nil
}
