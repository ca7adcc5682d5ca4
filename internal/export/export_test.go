package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ledgerly/internal/domain"
	"ledgerly/internal/export"
)

func sampleDocument() *domain.ParsedDocument {
	return &domain.ParsedDocument{
		Items: []domain.ParsedItem{
			{Name: "Rice", Category: domain.ItemCategoryGoods, Unit: "Nos", Rate: "45.50", TaxRate: "0"},
		},
		Ledgers: []domain.ParsedLedger{
			{Name: "HDFC Bank", Type: "Bank Accounts", OpeningBalance: "0", ClosingBalance: "50000"},
			{Name: "Acme Co", Type: "Sundry Debtors", OpeningBalance: "0", ClosingBalance: "12000"},
		},
		Parties: []domain.ParsedParty{
			{Name: "Acme Co", Kind: domain.PartyKindCustomer, Outstanding: "12000"},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteWorkbook(&buf, sampleDocument()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Items", "Ledgers", "Parties", "Vouchers"}, f.GetSheetList())

	rows, err := f.GetRows("Ledgers")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Group", "Opening Balance", "Closing Balance"}, rows[0])
	assert.Equal(t, []string{"HDFC Bank", "Bank Accounts", "0", "50000"}, rows[1])

	rows, err = f.GetRows("Parties")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "customer", rows[1][1])

	rows, err = f.GetRows("Vouchers")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Type", rows[0][0])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleDocument(), export.KindItems))

	body := buf.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, export.BOM, body[:3])

	records, err := csv.NewReader(strings.NewReader(string(body[3:]))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Name", "Category", "Unit", "Rate", "HSN Code", "Tax Rate"}, records[0])
	assert.Equal(t, []string{"Rice", "goods", "Nos", "45.50", "", "0"}, records[1])
}

func TestParseKind(t *testing.T) {
	k, err := export.ParseKind("parties")
	require.NoError(t, err)
	assert.Equal(t, export.KindParties, k)

	_, err = export.ParseKind("journals")
	assert.ErrorContains(t, err, "unknown record kind")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Master_Export_2024", export.SanitizeFilename("Master Export (2024)"))
	assert.Equal(t, "a_b", export.SanitizeFilename("a///b"))
	assert.Equal(t, "tally", export.SanitizeFilename("***"))
	assert.Len(t, export.SanitizeFilename(strings.Repeat("x", 150)), 100)
}

func TestBuildFilename(t *testing.T) {
	date := time.Now().Format("2006-01-02")
	assert.Equal(t, "Master_preview_"+date+".xlsx", export.BuildFilename("Master.xml", "xlsx"))
	assert.Equal(t, "tally_preview_"+date+".csv", export.BuildFilename("", "csv"))
}
