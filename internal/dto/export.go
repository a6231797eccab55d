package dto

import (
	"fmt"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// NRAExportURI binds the NRA file path segments.
type NRAExportURI struct {
	PeriodURI
	File string `uri:"file" binding:"required,oneof=sales purchases declaration"`
}

// SaftExportParams defines the SAF-T export query. Monthly files need year
// and month; annual and on-demand files take a year or a from/to range.
type SaftExportParams struct {
	Year  int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
	From  string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ToRequest builds the export request for a variant.
func (p SaftExportParams) ToRequest(variant string) (domain.SaftRequest, error) {
	req := domain.SaftRequest{Variant: domain.SaftVariant(variant), Year: p.Year, Month: p.Month}
	if !req.Variant.Valid() {
		return req, fmt.Errorf("unknown SAF-T variant %q", variant)
	}
	var err error
	if req.From, err = ParseDate(p.From); err != nil {
		return req, err
	}
	if req.To, err = ParseDate(p.To); err != nil {
		return req, err
	}
	return req, nil
}
