package pgsql

import (
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:        newPgxTxManager(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		ContraagentRepo:  newPgxContraagentRepository(dbPool),
		SourceRepo:       newPgxPostingSourceRepository(dbPool),
		SequenceRepo:     newPgxSequenceRepository(dbPool),
		VatRepo:          newPgxVatRepository(dbPool),
		MasterDataRepo:   newPgxMasterDataRepository(dbPool),
	}
}
