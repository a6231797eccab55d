package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/core/services"
	"github.com/SscSPs/erp_accounting_core/internal/dto"
	"github.com/SscSPs/erp_accounting_core/internal/export/nra"
	"github.com/SscSPs/erp_accounting_core/internal/export/saft"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/SscSPs/erp_accounting_core/internal/platform/config"
	"github.com/SscSPs/erp_accounting_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_accounting_core/pkg/database"
)

var (
	// Global flags
	organizationID string
	outDir         string
	debug          bool

	// Period flags
	year  int
	month int

	// nra flags
	nraFile string

	// saft flags
	variant  string
	fromDate string
	toDate   string
)

var rootCmd = &cobra.Command{
	Use:           "accounting_export",
	Short:         "Write statutory NRA and SAF-T files for an organization",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var nraCmd = &cobra.Command{
	Use:   "nra",
	Short: "Write the VAT registers and declaration (PRODAGBI.TXT, POKUPKI.TXT, DEKLAR.TXT)",
	RunE:  runNRA,
}

var saftCmd = &cobra.Command{
	Use:   "saft",
	Short: "Write a SAF-T XML file (monthly, annual or on_demand)",
	RunE:  runSAFT,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&organizationID, "org", "", "Organization ID to export")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "Output directory (defaults to EXPORT_DIR)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&year, "year", 0, "Reporting year")
	rootCmd.PersistentFlags().IntVar(&month, "month", 0, "Reporting month (1-12)")
	_ = rootCmd.MarkPersistentFlagRequired("org")

	nraCmd.Flags().StringVar(&nraFile, "file", "all", "File to write: sales, purchases, declaration or all")

	saftCmd.Flags().StringVar(&variant, "variant", string(domain.SaftMonthly), "SAF-T variant: monthly, annual or on_demand")
	saftCmd.Flags().StringVar(&fromDate, "from", "", "First day covered (YYYY-MM-DD), annual and on_demand only")
	saftCmd.Flags().StringVar(&toDate, "to", "", "Last day covered (YYYY-MM-DD), annual and on_demand only")

	rootCmd.AddCommand(nraCmd)
	rootCmd.AddCommand(saftCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// exporter bundles what one CLI run needs.
type exporter struct {
	ctx    context.Context
	svc    portssvc.ExportSvc
	outDir string
	close  func()
}

func newExporter() (*exporter, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dir := outDir
	if dir == "" {
		dir = cfg.ExportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	ctx := middleware.WithLogger(context.Background(), logger)
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, err
	}
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))

	return &exporter{
		ctx:    ctx,
		svc:    container.Export,
		outDir: dir,
		close:  func() { database.ClosePgxPool(pool) },
	}, nil
}

// write renders into a file under the output directory. A failed render
// removes the partial file.
func (e *exporter) write(name string, render func(io.Writer) error) error {
	path := filepath.Join(e.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Println("Wrote", path)
	return nil
}

func runNRA(cmd *cobra.Command, args []string) error {
	period := domain.Period{Year: year, Month: month}

	type nraTarget struct {
		name   string
		render func(context.Context, string, domain.Period, io.Writer) error
	}
	var targets []nraTarget

	e, err := newExporter()
	if err != nil {
		return err
	}
	defer e.close()

	sales := nraTarget{nra.SalesFileName, e.svc.WriteSalesRegister}
	purchases := nraTarget{nra.PurchasesFileName, e.svc.WritePurchaseRegister}
	declaration := nraTarget{nra.DeclarationFileName, e.svc.WriteDeclaration}
	switch nraFile {
	case "sales":
		targets = []nraTarget{sales}
	case "purchases":
		targets = []nraTarget{purchases}
	case "declaration":
		targets = []nraTarget{declaration}
	case "all":
		targets = []nraTarget{sales, purchases, declaration}
	default:
		return fmt.Errorf("unknown --file %q", nraFile)
	}

	for _, t := range targets {
		err := e.write(t.name, func(w io.Writer) error {
			return t.render(e.ctx, organizationID, period, w)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func runSAFT(cmd *cobra.Command, args []string) error {
	req, err := (dto.SaftExportParams{Year: year, Month: month, From: fromDate, To: toDate}).ToRequest(variant)
	if err != nil {
		return err
	}

	e, err := newExporter()
	if err != nil {
		return err
	}
	defer e.close()

	return e.write(saft.FileName(req.Variant), func(w io.Writer) error {
		return e.svc.WriteSAFT(e.ctx, organizationID, req, w)
	})
}
