package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tradeos/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (12 columns).
var columns = []string{
	"품명",
	"모델명",
	"규격",
	"단가",
	"통화",
	"수량",
	"카테고리",
	"제조사",
	"비고",
	"Source",
	"Confidence",
	"Warnings",
}

// Writer wraps csv.Writer for exporting extracted products as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 12-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResult converts an analysis result to CSV rows and writes them.
// Source, confidence, and warnings repeat on every row so a filtered sheet
// still shows provenance.
func (w *Writer) WriteResult(result *domain.AnalysisResult) error {
	for i := range result.Products {
		row := productToRow(&result.Products[i], result)
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// productToRow converts a single product to a 12-element string slice.
func productToRow(p *domain.ProductData, result *domain.AnalysisResult) []string {
	row := make([]string, len(columns))

	row[0] = p.Name
	row[1] = p.Model
	row[2] = p.Specs
	row[3] = formatNumber(p.Price)
	row[4] = p.Currency
	row[5] = formatNumber(p.Quantity)
	row[6] = p.Category
	row[7] = p.Manufacturer
	row[8] = p.Notes
	row[9] = string(result.Source)
	row[10] = strconv.FormatFloat(result.Confidence, 'f', 1, 64)
	row[11] = strings.Join(result.Warnings, "; ")

	return row
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a source document name for use as an export filename.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized export filename.
// Format: {sanitized_document_name}_{YYYY-MM-DD}.csv
func BuildFilename(documentName string) string {
	sanitized := SanitizeFilename(documentName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
