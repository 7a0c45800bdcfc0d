package folio

import (
	"fmt"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/span"
)

// Config holds the tuning parameters of a Processor. The zero value is not
// usable; start from DefaultConfig and override fields as needed.
type Config struct {
	// MergeConsecutive enables folding of adjacent same-signature fragments
	// into single elements. When false every fragment becomes its own
	// element. Default: true
	MergeConsecutive bool

	// YTolerance is the vertical tolerance, in page units, used both for
	// fragment merging and for grouping elements into lines. Default: 3.0
	YTolerance float64

	// XGapMax is the horizontal gap at or beyond which two fragments never
	// merge. Default: 50.0 units
	XGapMax float64

	// CharSpacing is the gap below which merged fragment texts concatenate
	// without an inserted space. Default: 1.0 units
	CharSpacing float64

	// ColumnThreshold is the x boundary between the left and right layout
	// columns. Default: 305.0 units
	ColumnThreshold float64

	// SuperscriptHeight marks elements shorter than this as superscript
	// candidates. Default: 9.0 units
	SuperscriptHeight float64

	// SuperscriptSize marks elements whose signature font size is below this
	// as superscript candidates. Default: 7.0 points
	SuperscriptSize float64

	// CatalogExamples caps the distinct example texts kept per signature.
	// Zero disables example collection. Default: 5
	CatalogExamples int

	// ExampleLength caps each catalog example's length in runes. Default: 50
	ExampleLength int

	// Workers is the number of pages processed concurrently. Zero or one
	// means serial. Results are identical for any worker count. Default: 1
	Workers int
}

// DefaultConfig returns the default processor configuration.
func DefaultConfig() Config {
	return Config{
		MergeConsecutive:  true,
		YTolerance:        3.0,
		XGapMax:           50.0,
		CharSpacing:       1.0,
		ColumnThreshold:   layout.DefaultColumnThreshold,
		SuperscriptHeight: 9.0,
		SuperscriptSize:   7.0,
		CatalogExamples:   5,
		ExampleLength:     50,
		Workers:           1,
	}
}

// Validate checks the configuration for values that would make processing
// meaningless. It is the only hard failure in the module; everything after
// construction degrades gracefully instead of erroring.
func (c Config) Validate() error {
	if c.YTolerance < 0 {
		return fmt.Errorf("invalid config: YTolerance %v is negative", c.YTolerance)
	}
	if c.XGapMax < 0 {
		return fmt.Errorf("invalid config: XGapMax %v is negative", c.XGapMax)
	}
	if c.CharSpacing < 0 {
		return fmt.Errorf("invalid config: CharSpacing %v is negative", c.CharSpacing)
	}
	if c.ColumnThreshold < 0 {
		return fmt.Errorf("invalid config: ColumnThreshold %v is negative", c.ColumnThreshold)
	}
	if c.SuperscriptHeight < 0 {
		return fmt.Errorf("invalid config: SuperscriptHeight %v is negative", c.SuperscriptHeight)
	}
	if c.SuperscriptSize < 0 {
		return fmt.Errorf("invalid config: SuperscriptSize %v is negative", c.SuperscriptSize)
	}
	if c.CatalogExamples < 0 {
		return fmt.Errorf("invalid config: CatalogExamples %d is negative", c.CatalogExamples)
	}
	if c.ExampleLength < 0 {
		return fmt.Errorf("invalid config: ExampleLength %d is negative", c.ExampleLength)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid config: Workers %d is negative", c.Workers)
	}
	return nil
}

// mergeConfig derives the span merger configuration.
func (c Config) mergeConfig() span.Config {
	return span.Config{
		MergeConsecutive: c.MergeConsecutive,
		YTolerance:       c.YTolerance,
		XGapMax:          c.XGapMax,
		CharSpacing:      c.CharSpacing,
	}
}

// attacherConfig derives the superscript attacher configuration.
func (c Config) attacherConfig() layout.AttacherConfig {
	return layout.AttacherConfig{
		HeightThreshold: c.SuperscriptHeight,
		SizeThreshold:   c.SuperscriptSize,
	}
}

// assemblerConfig derives the line assembler configuration.
func (c Config) assemblerConfig() layout.AssemblerConfig {
	return layout.AssemblerConfig{YTolerance: c.YTolerance}
}
