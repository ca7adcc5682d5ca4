package ses

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ledgerly/internal/domain"
)

func TestBuildSummaryHTML_EscapesFileName(t *testing.T) {
	summary := domain.ImportSummary{
		ImportID: uuid.New(),
		FileName: `<script>alert(1)</script>.xml`,
		Counts:   domain.ImportCounts{Items: 2, Ledgers: 3, Parties: 1, Vouchers: 7},
	}

	body := buildSummaryHTML(summary, "http://localhost:3000/master/items")

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, summary.ImportID.String())
}

func TestBuildSummaryText_Counts(t *testing.T) {
	summary := domain.ImportSummary{
		ImportID: uuid.New(),
		FileName: "backup.xml",
		Counts:   domain.ImportCounts{Items: 2, Ledgers: 3, Parties: 1, Vouchers: 7},
	}

	body := buildSummaryText(summary, "http://app/master/items")

	assert.Contains(t, body, "Items: 2")
	assert.Contains(t, body, "Ledgers: 3")
	assert.Contains(t, body, "Vouchers (not posted): 7")
	assert.Contains(t, body, "http://app/master/items")
}
