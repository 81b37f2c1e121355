package repositories

// RepositoryProvider bundles the repositories one storage backend exposes.
// The pgsql and jsonfile backends each construct one of these; nothing above
// the provider knows which backend is live.
type RepositoryProvider struct {
	AdvanceRepo AdvanceRepositoryFacade
	ProjectRepo ProjectRepositoryFacade
	StageRepo   StageRepositoryFacade
}
