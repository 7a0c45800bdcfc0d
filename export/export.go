package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/signature"
)

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports the full document: metadata, signature catalog
	// and the element list, as one JSON object
	FormatJSON Format = iota
	// FormatJSONL exports elements as JSON Lines (one element per line)
	FormatJSONL
	// FormatCSV exports elements as comma-separated values
	FormatCSV
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// Metadata describes the provenance of an exported document.
type Metadata struct {
	// Source names where the fragments came from (a file path, usually).
	Source string `json:"source"`

	// ExtractionDate is when the document was processed, RFC 3339.
	ExtractionDate string `json:"extraction_date"`

	// Generator identifies the producing library.
	Generator string `json:"generator"`

	// TotalElements is the number of reconstructed elements.
	TotalElements int `json:"total_elements"`

	// Pages is the number of pages the elements span.
	Pages int `json:"pages"`

	// MergeConsecutive records whether span merging was enabled.
	MergeConsecutive bool `json:"merge_consecutive"`
}

// Document is the full export payload: provenance, the signature catalog
// and the elements in reading order.
type Document struct {
	Metadata  Metadata           `json:"metadata"`
	Signature *signature.Catalog `json:"signature_catalog"`
	Elements  []model.Element    `json:"elements"`
}

// NewDocument assembles an export payload, computing the metadata block
// from the elements.
func NewDocument(source string, elements []model.Element, catalog *signature.Catalog, merged bool) Document {
	pages := make(map[int]bool)
	for _, e := range elements {
		pages[e.Page] = true
	}

	return Document{
		Metadata: Metadata{
			Source:           source,
			ExtractionDate:   time.Now().Format(time.RFC3339),
			Generator:        "folio",
			TotalElements:    len(elements),
			Pages:            len(pages),
			MergeConsecutive: merged,
		},
		Signature: catalog,
		Elements:  elements,
	}
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// PrettyPrint enables indented output for JSON
	PrettyPrint bool

	// IncludeHeader includes the header row in CSV exports
	IncludeHeader bool

	// CSVDelimiter specifies the delimiter for CSV export (default: comma)
	CSVDelimiter rune
}

// DefaultConfig returns sensible defaults for export configuration
func DefaultConfig() Config {
	return Config{
		Format:        FormatJSON,
		PrettyPrint:   true,
		IncludeHeader: true,
		CSVDelimiter:  ',',
	}
}

// Exporter writes documents to the configured format
type Exporter struct {
	config Config
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	if config.CSVDelimiter == 0 {
		config.CSVDelimiter = ','
	}
	return &Exporter{config: config}
}

// Export writes the document to the specified writer
func (e *Exporter) Export(doc Document, w io.Writer) error {
	switch e.config.Format {
	case FormatJSON:
		return e.exportJSON(doc, w)
	case FormatJSONL:
		return e.exportJSONL(doc, w)
	case FormatCSV:
		return e.exportCSV(doc, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes the document to a file
func (e *Exporter) ExportToFile(doc Document, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	return e.Export(doc, f)
}

// ExportToString writes the document to a string
func (e *Exporter) ExportToString(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSON writes the whole document as one JSON object
func (e *Exporter) exportJSON(doc Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(doc)
}

// exportJSONL writes one element per line; metadata and catalog are
// omitted, this format is for feeding elements into downstream pipelines
func (e *Exporter) exportJSONL(doc Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i, element := range doc.Elements {
		if err := encoder.Encode(element); err != nil {
			return fmt.Errorf("encoding element %d: %w", i, err)
		}
	}
	return nil
}

// csvColumns is the fixed column set for tabular export.
var csvColumns = []string{
	"id", "page", "text", "signature",
	"line_id", "line_num", "line_position", "line_start",
	"merged_count", "superscripts",
	"x", "y", "w", "h",
}

// exportCSV writes one row per element with a fixed column set
func (e *Exporter) exportCSV(doc Document, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.config.CSVDelimiter

	if e.config.IncludeHeader {
		if err := csvWriter.Write(csvColumns); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, element := range doc.Elements {
		if err := csvWriter.Write(elementToCSVRow(element)); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// elementToCSVRow renders one element in csvColumns order.
func elementToCSVRow(e model.Element) []string {
	return []string{
		strconv.Itoa(e.ID),
		strconv.Itoa(e.Page),
		e.Text,
		e.Signature,
		e.LineID,
		strconv.Itoa(e.LineNum),
		e.Column.String(),
		strconv.FormatBool(e.LineStart),
		strconv.Itoa(e.MergedCount),
		strings.Join(e.Superscripts, "|"),
		formatCoord(e.BBox.X),
		formatCoord(e.BBox.Y),
		formatCoord(e.BBox.Width),
		formatCoord(e.BBox.Height),
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
