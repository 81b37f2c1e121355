package services

// ServiceContainer bundles the application services handed to the HTTP layer.
type ServiceContainer struct {
	Advance   AdvanceSvcFacade
	Dashboard DashboardSvc
	Project   ProjectSvcFacade
	Stage     StageSvcFacade
}
