package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ledgerly/internal/config"
	"ledgerly/internal/domain"
	"ledgerly/internal/export"
	"ledgerly/internal/middleware"
	"ledgerly/internal/service"
)

// ImportHandler handles Tally import endpoints.
type ImportHandler struct {
	importService service.ImportService
	cfg           config.ImportConfig
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService, cfg config.ImportConfig) *ImportHandler {
	return &ImportHandler{importService: importService, cfg: cfg}
}

// importResponse is the data of a successful import.
type importResponse struct {
	ImportID string                 `json:"import_id"`
	Counts   domain.ImportCounts    `json:"counts"`
	Items    []domain.ParsedItem    `json:"items"`
	Ledgers  []domain.ParsedLedger  `json:"ledgers"`
	Parties  []domain.ParsedParty   `json:"parties"`
	Vouchers []domain.ParsedVoucher `json:"vouchers"`
	Warnings []domain.ImportWarning `json:"warnings"`
}

// parseRequest is the body of a parse-only call.
type parseRequest struct {
	XMLContent string `json:"xml_content"`
}

// parseResponse is the unwrapped parse result. The parse endpoint answers
// with the records at the top level rather than the data envelope.
type parseResponse struct {
	Items    []domain.ParsedItem    `json:"items"`
	Ledgers  []domain.ParsedLedger  `json:"ledgers"`
	Parties  []domain.ParsedParty   `json:"parties"`
	Vouchers []domain.ParsedVoucher `json:"vouchers"`
	Success  bool                   `json:"success"`
}

// Upload handles POST /api/v1/imports/tally
// @Summary Import a Tally export
// @Description Parse a Tally backup (.xml or .tsf) and import its stock items, ledgers and parties into the user's masters
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Tally export (.xml or .tsf)"
// @Success 201 {object} Response{data=ImportResultDoc} "Import completed"
// @Failure 400 {object} ErrorResponseBody "Missing file, empty file or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 502 {object} ErrorResponseBody "Destination write failed"
// @Security BearerAuth
// @Router /imports/tally [post]
func (h *ImportHandler) Upload(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	fileName, content, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.importService.Import(c.Request.Context(), service.ImportInput{
		UserID:    userID,
		UserEmail: middleware.GetEmail(c),
		FileName:  fileName,
		Content:   content,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	resp := importResponse{
		ImportID: result.ImportID.String(),
		Counts:   result.Counts,
		Warnings: result.Warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []domain.ImportWarning{}
	}
	if doc := result.Document; doc != nil {
		resp.Items, resp.Ledgers, resp.Parties, resp.Vouchers = records(doc)
	}
	RespondCreated(c, resp)
}

// Parse handles POST /api/v1/imports/tally/parse
// @Summary Parse Tally markup
// @Description Parse Tally export text without writing anything
// @Tags imports
// @Accept json
// @Produce json
// @Param request body ParseTallyRequest true "Tally export text"
// @Success 200 {object} ParseTallyResponse "Parsed records"
// @Failure 400 {object} ParseTallyError "No content"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /imports/tally/parse [post]
func (h *ImportHandler) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error(), "success": false})
		return
	}

	doc, err := h.importService.Parse(req.XMLContent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	resp := parseResponse{Success: true}
	resp.Items, resp.Ledgers, resp.Parties, resp.Vouchers = records(doc)
	c.JSON(http.StatusOK, resp)
}

// Preview handles POST /api/v1/imports/tally/preview
// @Summary Preview a Tally export
// @Description Parse a Tally export and download the records as a spreadsheet; nothing is written
// @Tags imports
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param file formData file true "Tally export (.xml or .tsf)"
// @Param format query string false "xlsx (default) or csv"
// @Param kind query string false "Record kind for csv: items, ledgers, parties, vouchers" default(ledgers)
// @Success 200 {file} file "Preview workbook or CSV"
// @Failure 400 {object} ErrorResponseBody "Missing file, empty file or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /imports/tally/preview [post]
func (h *ImportHandler) Preview(c *gin.Context) {
	if _, ok := extractUserID(c); !ok {
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	var kind export.Kind
	switch format {
	case "xlsx":
	case "csv":
		k, err := export.ParseKind(strings.ToLower(c.DefaultQuery("kind", string(export.KindLedgers))))
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_KIND", err.Error())
			return
		}
		kind = k
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
		return
	}

	fileName, content, ok := h.readUpload(c)
	if !ok {
		return
	}

	doc, err := h.importService.Parse(content)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.BuildFilename(fileName, format)))
	if format == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := export.WriteCSV(c.Writer, doc, kind); err != nil {
			middleware.GetLogger(c).Error("importHandler.Preview: writing csv", zap.Error(err))
		}
		return
	}

	c.Header("Content-Type", export.XLSXContentType)
	c.Status(http.StatusOK)
	if err := export.WriteWorkbook(c.Writer, doc); err != nil {
		middleware.GetLogger(c).Error("importHandler.Preview: writing workbook", zap.Error(err))
	}
}

// readUpload validates and reads the multipart "file" field. On failure the
// error response is already written.
func (h *ImportHandler) readUpload(c *gin.Context) (string, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return "", "", false
	}
	defer func() { _ = file.Close() }()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !domain.AllowedImportExtensions[ext] {
		HandleError(c, domain.ErrUnsupportedFileType)
		return "", "", false
	}

	limit := h.cfg.MaxFileSizeBytes()
	if limit > 0 && header.Size > limit {
		HandleError(c, domain.ErrFileTooLarge)
		return "", "", false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return "", "", false
	}
	return header.Filename, string(data), true
}

// records returns the document's record slices with nil replaced by empty
// slices so they encode as [] rather than null.
func records(doc *domain.ParsedDocument) ([]domain.ParsedItem, []domain.ParsedLedger, []domain.ParsedParty, []domain.ParsedVoucher) {
	items, ledgers, parties, vouchers := doc.Items, doc.Ledgers, doc.Parties, doc.Vouchers
	if items == nil {
		items = []domain.ParsedItem{}
	}
	if ledgers == nil {
		ledgers = []domain.ParsedLedger{}
	}
	if parties == nil {
		parties = []domain.ParsedParty{}
	}
	if vouchers == nil {
		vouchers = []domain.ParsedVoucher{}
	}
	return items, ledgers, parties, vouchers
}
