package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/export/nra"
	"github.com/SscSPs/erp_accounting_core/internal/export/saft"
)

// exportService loads reporting data and hands it to the statutory formatters.
type exportService struct {
	BaseService
	orgRepo         portsrepo.OrganizationReader
	accountRepo     portsrepo.AccountRepositoryFacade
	journalRepo     portsrepo.JournalRepositoryFacade
	contraagentRepo portsrepo.ContraagentReader
	sourceRepo      portsrepo.PostingSourceRepositoryFacade
	vatRepo         portsrepo.VatRegisterRepository
	masterDataRepo  portsrepo.MasterDataReader
	software        saft.Software
}

// NewExportService creates a new ExportSvc.
func NewExportService(repos portsrepo.RepositoryProvider, software saft.Software, opts ...Option) portssvc.ExportSvc {
	return &exportService{
		BaseService:     newBaseService(opts...),
		orgRepo:         repos.OrganizationRepo,
		accountRepo:     repos.AccountRepo,
		journalRepo:     repos.JournalRepo,
		contraagentRepo: repos.ContraagentRepo,
		sourceRepo:      repos.SourceRepo,
		vatRepo:         repos.VatRepo,
		masterDataRepo:  repos.MasterDataRepo,
		software:        software,
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) WriteSalesRegister(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error {
	if err := validatePeriod(period); err != nil {
		return err
	}
	if _, err := s.orgRepo.FindOrganizationByID(ctx, organizationID); err != nil {
		return err
	}
	rows, err := s.vatRepo.ListSalesRows(ctx, organizationID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales register", slog.String("period", period.Code()))
		return err
	}
	if err := nra.WriteSalesRegister(w, rows); err != nil {
		return err
	}
	s.LogInfo(ctx, "Sales register exported", slog.String("period", period.Code()), slog.Int("rows", len(rows)))
	return nil
}

func (s *exportService) WritePurchaseRegister(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error {
	if err := validatePeriod(period); err != nil {
		return err
	}
	if _, err := s.orgRepo.FindOrganizationByID(ctx, organizationID); err != nil {
		return err
	}
	rows, err := s.vatRepo.ListPurchaseRows(ctx, organizationID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase register", slog.String("period", period.Code()))
		return err
	}
	if err := nra.WritePurchaseRegister(w, rows); err != nil {
		return err
	}
	s.LogInfo(ctx, "Purchase register exported", slog.String("period", period.Code()), slog.Int("rows", len(rows)))
	return nil
}

func (s *exportService) WriteDeclaration(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error {
	if err := validatePeriod(period); err != nil {
		return err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return err
	}
	sales, err := s.vatRepo.ListSalesRows(ctx, organizationID, period)
	if err != nil {
		return err
	}
	purchases, err := s.vatRepo.ListPurchaseRows(ctx, organizationID, period)
	if err != nil {
		return err
	}
	return nra.WriteDeclaration(w, nra.NewDeclaration(*org, period, sales, purchases))
}

func validateSaftRequest(req domain.SaftRequest) error {
	if !req.Variant.Valid() {
		return fmt.Errorf("%w: unknown SAF-T variant %q", apperrors.ErrValidation, req.Variant)
	}
	if req.Variant == domain.SaftMonthly {
		return validatePeriod(domain.Period{Year: req.Year, Month: req.Month})
	}
	if req.Year == 0 && (req.From == nil || req.To == nil) {
		return fmt.Errorf("%w: year or both from and to are required", apperrors.ErrValidation)
	}
	from, to := req.Range()
	if to.Before(from) {
		return fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return nil
}

// WriteSAFT loads what the requested variant reports and streams the XML.
func (s *exportService) WriteSAFT(ctx context.Context, organizationID string, req domain.SaftRequest, w io.Writer) error {
	if err := validateSaftRequest(req); err != nil {
		return err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return err
	}
	if req.Year == 0 {
		req.Year = req.From.Year()
	}

	data := saft.Data{
		Organization: *org,
		Request:      req,
		Software:     s.software,
		GeneratedAt:  s.Now(),
	}
	switch req.Variant {
	case domain.SaftMonthly:
		err = s.loadMonthly(ctx, organizationID, &data)
	case domain.SaftAnnual:
		err = s.loadAnnual(ctx, organizationID, &data)
	case domain.SaftOnDemand:
		err = s.loadOnDemand(ctx, organizationID, &data)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load SAF-T data", slog.String("variant", string(req.Variant)))
		return err
	}

	if err := saft.Write(w, data); err != nil {
		return err
	}
	s.LogInfo(ctx, "SAF-T file exported",
		slog.String("variant", string(req.Variant)),
		slog.Int("entries", len(data.Entries)),
		slog.Int("sales", len(data.Sales)),
		slog.Int("purchases", len(data.Purchases)))
	return nil
}

func (s *exportService) loadMonthly(ctx context.Context, organizationID string, data *saft.Data) error {
	req := data.Request
	period := domain.Period{Year: req.Year, Month: req.Month}
	from, to := req.Range()
	var err error

	if data.Accounts, err = s.accountRepo.ListAccountBalances(ctx, organizationID, from, to); err != nil {
		return err
	}
	if data.Contraagents, err = s.contraagentRepo.ListContraagents(ctx, organizationID, domain.ContraagentFilter{}); err != nil {
		return err
	}
	if data.Products, err = s.masterDataRepo.ListProducts(ctx, organizationID); err != nil {
		return err
	}
	if data.Entries, err = s.ledgerEntries(ctx, organizationID, data); err != nil {
		return err
	}
	if data.Sales, err = s.vatRepo.ListSalesRows(ctx, organizationID, period); err != nil {
		return err
	}
	if data.Purchases, err = s.vatRepo.ListPurchaseRows(ctx, organizationID, period); err != nil {
		return err
	}
	data.Payments, err = s.sourceRepo.ListPaymentsInPeriod(ctx, organizationID, from, to)
	return err
}

// ledgerEntries pairs the period's entries with their lines and resolves the
// account code and counterparty reported for every line.
func (s *exportService) ledgerEntries(ctx context.Context, organizationID string, data *saft.Data) ([]saft.LedgerEntry, error) {
	from, to := data.Request.Range()
	entries, err := s.journalRepo.ListEntriesInPeriod(ctx, organizationID, from, to)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	linesByEntry, err := s.journalRepo.FindLinesByEntryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	accounts := make(map[string]domain.Account, len(data.Accounts))
	for _, a := range data.Accounts {
		accounts[a.AccountID] = a.Account
	}
	contraagents := make(map[string]domain.Contraagent, len(data.Contraagents))
	for _, c := range data.Contraagents {
		contraagents[c.ContraagentID] = c
	}

	out := make([]saft.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		lines := linesByEntry[e.EntryID]
		ledger := saft.LedgerEntry{Entry: e, Lines: make([]saft.LedgerLine, len(lines))}
		for i, l := range lines {
			acc := accounts[l.AccountID]
			line := saft.LedgerLine{EntryLine: l, AccountCode: acc.Code, TaxpayerCode: acc.TaxpayerCode()}
			if l.ContraagentID != nil {
				if c, ok := contraagents[*l.ContraagentID]; ok {
					if isSupplierLine(acc, c) {
						line.SupplierID = c.SaftID()
					} else {
						line.CustomerID = c.SaftID()
					}
				}
			}
			ledger.Lines[i] = line
		}
		out = append(out, ledger)
	}
	return out, nil
}

// isSupplierLine decides which side of a counterparty a line reports. The
// 40x payables group wins over the contraagent's roles.
func isSupplierLine(acc domain.Account, c domain.Contraagent) bool {
	switch {
	case strings.HasPrefix(acc.Code, "40"):
		return true
	case strings.HasPrefix(acc.Code, "41"):
		return false
	}
	return c.IsSupplier && !c.IsCustomer
}

func (s *exportService) loadAnnual(ctx context.Context, organizationID string, data *saft.Data) error {
	from, to := data.Request.Range()
	var err error
	if data.Assets, err = s.sourceRepo.ListAssets(ctx, organizationID); err != nil {
		return err
	}
	data.AssetTransactions, err = s.sourceRepo.ListAssetTransactionsInPeriod(ctx, organizationID, from, to)
	return err
}

func (s *exportService) loadOnDemand(ctx context.Context, organizationID string, data *saft.Data) error {
	from, to := data.Request.Range()
	var err error
	if data.Products, err = s.masterDataRepo.ListProducts(ctx, organizationID); err != nil {
		return err
	}
	if data.StockLevels, err = s.masterDataRepo.ListStockLevels(ctx, organizationID, to); err != nil {
		return err
	}
	data.StockMovements, err = s.masterDataRepo.ListStockMovements(ctx, organizationID, from, to)
	return err
}
