package services

import (
	portsrepo "github.com/SscSPs/ops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
	"github.com/SscSPs/ops_backend/internal/metrics"
	"github.com/SscSPs/ops_backend/internal/platform/config"
	"github.com/SscSPs/ops_backend/internal/reports"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, submitter TaskSubmitter, collector *metrics.Collector) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ticket = NewTicketService(repos, WithTicketMetrics(collector))

	processors := reports.NewProcessors(reports.NewLedgerReader(cfg.LedgerDir), cfg.ReportOutputDir)
	container.Reporting = NewReportService(
		submitter,
		processors,
		cfg.ReportOutputDir,
		WithReportMetrics(collector),
	)

	container.Health = NewHealthService(repos.Health)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TicketSvcFacade  = (*ticketService)(nil)
	_ portssvc.ReportingService = (*reportService)(nil)
	_ portssvc.HealthService    = (*healthService)(nil)
)
