package services

import (
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/export/saft"
	"github.com/SscSPs/erp_accounting_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The resolver is shared by the journal engine and every posting recipe.
	container.Resolver = NewAccountResolver(repos.AccountRepo, opts...)
	container.Account = NewAccountService(repos.OrganizationRepo, repos.AccountRepo, opts...)
	container.Journal = NewJournalService(
		repos.TxManager,
		repos.OrganizationRepo,
		repos.AccountRepo,
		repos.JournalRepo,
		repos.SourceRepo,
		container.Resolver,
		opts...,
	)
	container.OpeningBalance = NewOpeningBalanceService(repos.TxManager, repos.ContraagentRepo, container.Journal, opts...)
	container.Numbering = NewNumberingService(repos.TxManager, repos.SequenceRepo, opts...)
	container.Vat = NewVatService(repos.TxManager, repos.VatRepo, opts...)
	container.Reporting = NewReportingService(repos.OrganizationRepo, repos.AccountRepo, opts...)
	container.Export = NewExportService(repos, saft.Software{
		CompanyName: cfg.SaftSoftwareName,
		ID:          cfg.SaftSoftwareName,
		Version:     cfg.SaftSoftwareVersion,
	}, opts...)

	return container
}
