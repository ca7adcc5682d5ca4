package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"ledgerly/internal/domain"
)

// BOM is the UTF-8 byte order mark written before CSV output for Excel
// compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the records of one kind as CSV, header first.
func WriteCSV(w io.Writer, doc *domain.ParsedDocument, kind Kind) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	sheet := BuildSheet(doc, kind)
	cw := csv.NewWriter(w)
	if err := cw.Write(sheet.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(sheet.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an upload name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "tally"
	}
	return s
}

// BuildFilename returns a sanitized preview filename for the upload.
// Format: {sanitized_upload_name}_preview_{YYYY-MM-DD}.{ext}
func BuildFilename(uploadName, ext string) string {
	base := uploadName
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_preview_%s.%s", SanitizeFilename(base), date, ext)
}
