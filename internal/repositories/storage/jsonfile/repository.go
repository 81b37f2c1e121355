package jsonfile

import (
	"context"
	"sync"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	"github.com/projworks/advance_ledger_app/internal/models"
	"github.com/projworks/advance_ledger_app/internal/utils/mapping"
)

// Repository is a file-backed implementation of every storage port. The
// whole document sits in memory behind one mutex; every mutation rewrites
// the file. Suitable for single-process deployments without a database.
type Repository struct {
	mu   sync.RWMutex
	path string
	doc  *document
}

// NewRepositoryProvider opens (or seeds) the data file at path and exposes
// the file store through the standard repository provider.
func NewRepositoryProvider(path string) (portsrepo.RepositoryProvider, error) {
	doc, err := load(path)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	repo := &Repository{path: path, doc: doc}

	// Persist immediately so a fresh install has its seeded stages on disk.
	if err := persist(path, doc); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return portsrepo.RepositoryProvider{
		AdvanceRepo: repo,
		ProjectRepo: repo,
		StageRepo:   repo,
	}, nil
}

var (
	_ portsrepo.AdvanceRepositoryFacade = (*Repository)(nil)
	_ portsrepo.ProjectRepositoryFacade = (*Repository)(nil)
	_ portsrepo.StageRepositoryFacade   = (*Repository)(nil)
)

func (r *Repository) records(population domain.Population) *[]models.AdvanceRecord {
	if population == domain.Creditor {
		return &r.doc.Creditors
	}
	return &r.doc.Debtors
}

func (r *Repository) save() error {
	if err := persist(r.path, r.doc); err != nil {
		return apperrors.NewStorageError("failed to persist data file", err)
	}
	return nil
}

// --- advances ---

func (r *Repository) ListAdvances(_ context.Context, population domain.Population) ([]domain.AdvanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return mapping.ToDomainAdvanceSlice(*r.records(population)), nil
}

func (r *Repository) FindAdvanceByID(_ context.Context, population domain.Population, advanceID string) (*domain.AdvanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range *r.records(population) {
		if m.AdvanceID == advanceID {
			rec := mapping.ToDomainAdvance(m)
			return &rec, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *Repository) SaveAdvance(_ context.Context, record domain.AdvanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.records(record.Population)
	*records = append(*records, mapping.ToModelAdvance(record))
	return r.save()
}

func (r *Repository) UpdateAdvance(_ context.Context, record domain.AdvanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.records(record.Population)
	for i := range *records {
		if (*records)[i].AdvanceID == record.AdvanceID {
			(*records)[i] = mapping.ToModelAdvance(record)
			return r.save()
		}
	}
	return apperrors.ErrNotFound
}

func (r *Repository) DeleteAdvance(_ context.Context, population domain.Population, advanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.records(population)
	for i := range *records {
		if (*records)[i].AdvanceID == advanceID {
			*records = append((*records)[:i], (*records)[i+1:]...)
			return r.save()
		}
	}
	return apperrors.ErrNotFound
}

// --- projects ---

func (r *Repository) ListProjects(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]domain.Project, len(r.doc.Projects))
	for i, m := range r.doc.Projects {
		projects[i] = mapping.ToDomainProject(m)
	}
	return projects, nil
}

func (r *Repository) FindProjectByID(_ context.Context, projectID string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.doc.Projects {
		if m.ProjectID == projectID {
			p := mapping.ToDomainProject(m)
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *Repository) SaveProject(_ context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.Projects = append(r.doc.Projects, mapping.ToModelProject(project))
	return r.save()
}

func (r *Repository) UpdateProject(_ context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doc.Projects {
		if r.doc.Projects[i].ProjectID == project.ProjectID {
			m := mapping.ToModelProject(project)
			m.CreatedAt = r.doc.Projects[i].CreatedAt
			r.doc.Projects[i] = m
			return r.save()
		}
	}
	return apperrors.ErrNotFound
}

func (r *Repository) DeleteProject(_ context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doc.Projects {
		if r.doc.Projects[i].ProjectID == projectID {
			r.doc.Projects = append(r.doc.Projects[:i], r.doc.Projects[i+1:]...)
			return r.save()
		}
	}
	return apperrors.ErrNotFound
}

// --- stages ---

func (r *Repository) ListStages(_ context.Context) ([]domain.Stage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stages := make([]domain.Stage, len(r.doc.Stages))
	for i, m := range r.doc.Stages {
		stages[i] = mapping.ToDomainStage(m)
	}
	return stages, nil
}

func (r *Repository) SaveStage(_ context.Context, stage domain.Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.Stages = append(r.doc.Stages, mapping.ToModelStage(stage))
	return r.save()
}

func (r *Repository) UpdateStage(_ context.Context, stage domain.Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doc.Stages {
		if r.doc.Stages[i].StageID == stage.StageID {
			m := mapping.ToModelStage(stage)
			m.CreatedAt = r.doc.Stages[i].CreatedAt
			r.doc.Stages[i] = m
			return r.save()
		}
	}
	return apperrors.ErrNotFound
}

func (r *Repository) DeleteStage(_ context.Context, stageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doc.Stages {
		if r.doc.Stages[i].StageID == stageID {
			r.doc.Stages = append(r.doc.Stages[:i], r.doc.Stages[i+1:]...)
			return r.save()
		}
	}
	return apperrors.ErrNotFound
}
