package handler

import "ledgerly/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ParseTallyRequest represents the parse-only request body.
type ParseTallyRequest struct {
	XMLContent string `json:"xml_content" example:"<ENVELOPE><LEDGER NAME=\"HDFC Bank\"><PARENT>Bank Accounts</PARENT></LEDGER></ENVELOPE>"`
}

// --- Response Types ---

// ImportResultDoc represents the data of a completed import.
type ImportResultDoc struct {
	ImportID string                 `json:"import_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Counts   domain.ImportCounts    `json:"counts"`
	Items    []domain.ParsedItem    `json:"items"`
	Ledgers  []domain.ParsedLedger  `json:"ledgers"`
	Parties  []domain.ParsedParty   `json:"parties"`
	Vouchers []domain.ParsedVoucher `json:"vouchers"`
	Warnings []domain.ImportWarning `json:"warnings"`
}

// ParseTallyResponse represents a successful parse-only response.
type ParseTallyResponse struct {
	Items    []domain.ParsedItem    `json:"items"`
	Ledgers  []domain.ParsedLedger  `json:"ledgers"`
	Parties  []domain.ParsedParty   `json:"parties"`
	Vouchers []domain.ParsedVoucher `json:"vouchers"`
	Success  bool                   `json:"success" example:"true"`
}

// ParseTallyError represents a failed parse-only response.
type ParseTallyError struct {
	Error   string `json:"error" example:"no content"`
	Success bool   `json:"success" example:"false"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
