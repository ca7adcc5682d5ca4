package tally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/tally"
)

func TestExtractTag(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		tag    string
		want   string
		found  bool
	}{
		{"simple", "<NAME>Rice</NAME>", "NAME", "Rice", true},
		{"case insensitive", "<name>Rice</Name>", "NAME", "Rice", true},
		{"attributes ignored", `<RATE TYPE="x">45.50</RATE>`, "RATE", "45.50", true},
		{"first occurrence wins", "<NAME>A</NAME><NAME>B</NAME>", "NAME", "A", true},
		{"missing", "<UNIT>Kg</UNIT>", "NAME", "", false},
		{"unterminated", "<NAME>Rice", "NAME", "", false},
		{"longer name skipped", "<LEDGERNAME>x</LEDGERNAME><LEDGER>y</LEDGER>", "LEDGER", "y", true},
		{"only longer name", "<PARTYNAME>Acme</PARTYNAME>", "PARTY", "", false},
		{"self closing", "<HSNCODE/>", "HSNCODE", "", true},
		{"empty body", "<HSNCODE></HSNCODE>", "HSNCODE", "", true},
		{"path", "<GSTDETAILS.LIST><HSNCODE>1006</HSNCODE></GSTDETAILS.LIST>", "GSTDETAILS.LIST/HSNCODE", "1006", true},
		{"path outside parent", "<HSNCODE>1</HSNCODE><GSTDETAILS.LIST></GSTDETAILS.LIST>", "GSTDETAILS.LIST/HSNCODE", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tally.ExtractTag(tt.markup, tt.tag)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTag_NestedSameNameEndsAtFirstClose(t *testing.T) {
	got, ok := tally.ExtractTag("<A>outer<A>inner</A>tail</A>", "A")
	require.True(t, ok)
	assert.Equal(t, "outer<A>inner", got)
}

func TestBlocks(t *testing.T) {
	markup := `<LEDGER NAME="One"><PARENT>Bank</PARENT></LEDGER>
<LEDGERNAME>ignored</LEDGERNAME>
<ledger><NAME>Two</NAME></ledger>
<LEDGER NAME="Three"/>`

	blocks := tally.Blocks(markup, "LEDGER")

	require.Len(t, blocks, 3)
	assert.Equal(t, `NAME="One"`, blocks[0].Attrs)
	assert.Equal(t, "<PARENT>Bank</PARENT>", blocks[0].Body)
	assert.Equal(t, "", blocks[1].Attrs)
	assert.Equal(t, "<NAME>Two</NAME>", blocks[1].Body)
	assert.Equal(t, `NAME="Three"`, blocks[2].Attrs)
	assert.Empty(t, blocks[2].Body)
}

func TestBlocks_None(t *testing.T) {
	assert.Empty(t, tally.Blocks("<ENVELOPE></ENVELOPE>", "STOCKITEM"))
	assert.Empty(t, tally.Blocks("", "STOCKITEM"))
	assert.Empty(t, tally.Blocks("<STOCKITEM>unterminated", "STOCKITEM"))
}

func TestAttr(t *testing.T) {
	tests := []struct {
		name  string
		attrs string
		key   string
		want  string
		found bool
	}{
		{"double quoted", `NAME="HDFC Bank"`, "NAME", "HDFC Bank", true},
		{"single quoted", `name='Acme'`, "NAME", "Acme", true},
		{"spaces around equals", `NAME = "Acme"`, "NAME", "Acme", true},
		{"second attribute", `RESERVEDNAME="" NAME="Rice"`, "NAME", "Rice", true},
		{"prefix not matched", `RESERVEDNAME="x"`, "NAME", "", false},
		{"unquoted skipped", `NAME=Rice`, "NAME", "", false},
		{"missing", `ACTION="Create"`, "NAME", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tally.Attr(tt.attrs, tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
