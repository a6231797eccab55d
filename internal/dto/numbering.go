package dto

import "github.com/SscSPs/erp_accounting_core/internal/core/domain"

// DocumentTypeURI binds the document type path segment.
type DocumentTypeURI struct {
	DocType string `uri:"docType" binding:"required,doc_type"`
}

// ResetSequenceRequest sets the next number a document type issues.
type ResetSequenceRequest struct {
	NextNumber int64 `json:"nextNumber" binding:"required,min=1"`
}

// DocumentNumberResponse carries an issued or previewed document number.
type DocumentNumberResponse struct {
	DocumentType domain.DocumentType `json:"documentType"`
	Number       string              `json:"number"`
}

// GenerateUIDRequest defines the data needed to build a document UID.
type GenerateUIDRequest struct {
	DocumentType string `json:"documentType" binding:"required,doc_type"`
	Number       string `json:"number"`
}

// DocumentUIDResponse carries a generated UID and its decomposition.
type DocumentUIDResponse struct {
	UID   string                   `json:"uid"`
	Parts *domain.DocumentUIDParts `json:"parts,omitempty"`
}
