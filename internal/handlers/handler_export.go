package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/dto"
	"github.com/SscSPs/erp_accounting_core/internal/export/nra"
	"github.com/SscSPs/erp_accounting_core/internal/export/saft"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	nraContentType  = "text/plain; charset=windows-1251"
	saftContentType = "application/xml; charset=utf-8"
)

type exportHandler struct {
	exportService portssvc.ExportSvc
}

// registerExportRoutes registers the statutory file download routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc) {
	h := &exportHandler{exportService: exportService}

	exports := rg.Group("/exports")
	{
		exports.GET("/nra/:year/:month/:file", h.exportNRA)
		exports.GET("/saft/:variant", h.exportSAFT)
	}
}

// attachment renders into memory first so a failure still gets a proper status.
func attachment(c *gin.Context, fileName, contentType string, write func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(http.StatusOK, contentType, buf.Bytes())
	return nil
}

// exportNRA godoc
// @Summary Download an NRA VAT file
// @Description Produces the fixed-width sales register, purchase register or declaration in Windows-1251
// @Tags exports
// @Produce  plain
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   year path int true "Year"
// @Param   month path int true "Month"
// @Param   file path string true "sales, purchases or declaration"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid period or file"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Failed to export file"
// @Router /exports/nra/{year}/{month}/{file} [get]
func (h *exportHandler) exportNRA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	var uri dto.NRAExportURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "export parameters", err)
		return
	}
	period := uri.Period()

	var (
		fileName string
		write    func(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error
	)
	switch uri.File {
	case "sales":
		fileName, write = nra.SalesFileName, h.exportService.WriteSalesRegister
	case "purchases":
		fileName, write = nra.PurchasesFileName, h.exportService.WritePurchaseRegister
	default:
		fileName, write = nra.DeclarationFileName, h.exportService.WriteDeclaration
	}

	err := attachment(c, fileName, nraContentType, func(w io.Writer) error {
		return write(c.Request.Context(), organizationID, period, w)
	})
	if err != nil {
		respondError(c, err, "Failed to export file")
		return
	}
	logger.Info("NRA file downloaded", slog.String("file", fileName), slog.String("period", period.Code()))
}

// exportSAFT godoc
// @Summary Download a SAF-T audit file
// @Description Monthly files need year and month; annual and on-demand files take a year or a from/to range
// @Tags exports
// @Produce  xml
// @Param   X-Organization-ID header string true "Organization ID"
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   variant path string true "monthly, annual or on_demand"
// @Param   year query int false "Year"
// @Param   month query int false "Month (monthly only)"
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid variant or range"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Failed to export SAF-T"
// @Router /exports/saft/{variant} [get]
func (h *exportHandler) exportSAFT(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, _, ok := tenant(c)
	if !ok {
		return
	}
	var params dto.SaftExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	req, err := params.ToRequest(c.Param("variant"))
	if err != nil {
		badRequest(c, "export parameters", err)
		return
	}

	err = attachment(c, saft.FileName(req.Variant), saftContentType, func(w io.Writer) error {
		return h.exportService.WriteSAFT(c.Request.Context(), organizationID, req, w)
	})
	if err != nil {
		respondError(c, err, "Failed to export SAF-T")
		return
	}
	logger.Info("SAF-T file downloaded", slog.String("variant", string(req.Variant)))
}
