package services

import (
	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the application services on top of whichever
// storage backend produced the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Advance = NewAdvanceService(repos.AdvanceRepo, repos.ProjectRepo)
	container.Dashboard = NewDashboardService(repos.AdvanceRepo, repos.ProjectRepo)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.Stage = NewStageService(repos.StageRepo)

	return container
}
