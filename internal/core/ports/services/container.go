package services

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Account   AccountSvc
	Ledger    LedgerSvc
	Employee  EmployeeSvc
	Reporting ReportingSvc
}
