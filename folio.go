// Package folio reconstructs logical text structure from raw positioned
// fragments.
//
// Many extraction backends (PDF text engines, OCR, span dumps) produce a flat
// stream of positioned text runs per page: a string, a font, a size, style
// flags and a bounding box, in no particular order. folio turns that stream
// into a deterministic sequence of logical elements annotated with a
// typographic signature, column membership, line grouping and attached
// superscript markers, plus a document-wide signature catalog.
//
// Basic usage:
//
//	result, err := folio.New().Process(source.FromFragments(fragments))
//	if err != nil {
//	    // handle error
//	}
//	for _, element := range result.Elements {
//	    fmt.Println(element.LineID, element.Text)
//	}
//
// With options:
//
//	config := folio.DefaultConfig()
//	config.ColumnThreshold = 280
//	config.Workers = 4
//	processor, err := folio.NewWithConfig(config)
//
// Processing is deterministic and idempotent: the same fragments and the same
// configuration always produce the same elements, ids and catalog, for any
// worker count.
package folio

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/signature"
	"github.com/tsawler/folio/source"
	"github.com/tsawler/folio/span"
)

// Stats tallies what a run saw and dropped. Diagnostics are returned, never
// logged; a caller that cares inspects the tallies.
type Stats struct {
	// Pages is the number of pages processed, including empty ones.
	Pages int

	// Fragments is the number of raw input fragments across all pages.
	Fragments int

	// EmptyFragments counts fragments dropped for whitespace-only text.
	EmptyFragments int

	// MalformedFragments counts fragments dropped for invalid bounding boxes.
	MalformedFragments int

	// Elements is the number of reconstructed elements.
	Elements int

	// Superscripts and Subscripts count absorbed raised and lowered markers.
	Superscripts int
	Subscripts   int
}

// Result is the outcome of one processing run.
type Result struct {
	// Elements is the reconstructed element sequence in reading order, with
	// contiguous ids from layout.FirstID.
	Elements []model.Element

	// Catalog indexes every signature observed in Elements.
	Catalog *signature.Catalog

	// Stats tallies the run.
	Stats Stats
}

// Processor runs the reconstruction pipeline. A Processor is immutable and
// safe for concurrent use; each Process call is independent.
type Processor struct {
	config    Config
	merger    *span.Merger
	attacher  *layout.Attacher
	assembler *layout.Assembler
}

// New creates a processor with default configuration.
func New() *Processor {
	p, _ := NewWithConfig(DefaultConfig())
	return p
}

// NewWithConfig creates a processor with custom configuration. The
// configuration is validated once here; processing itself never fails on
// data.
func NewWithConfig(config Config) (*Processor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Processor{
		config:    config,
		merger:    span.NewMergerWithConfig(config.mergeConfig()),
		attacher:  layout.NewAttacherWithConfig(config.attacherConfig()),
		assembler: layout.NewAssemblerWithConfig(config.assemblerConfig()),
	}, nil
}

// pageResult is one page's contribution to a run.
type pageResult struct {
	elements []model.Element
	stats    Stats
}

// Process reconstructs all pages of a source.
//
// Pages are independent until the final sequencing step, so they fan out
// across Config.Workers goroutines; per-page results are reduced in page
// order, which keeps the output identical for any worker count. A failing
// source fails the whole run with no partial output.
func (p *Processor) Process(src source.Source) (*Result, error) {
	pages, err := src.Pages()
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return p.ProcessPages(pages)
}

// ProcessFragments reconstructs a flat fragment list, grouping by page.
func (p *Processor) ProcessFragments(fragments []model.Fragment) (*Result, error) {
	return p.Process(source.FromFragments(fragments))
}

// ProcessPages reconstructs pre-built pages.
func (p *Processor) ProcessPages(pages []source.Page) (*Result, error) {
	results := make([]pageResult, len(pages))

	var g errgroup.Group
	if p.config.Workers > 1 {
		g.SetLimit(p.config.Workers)
	} else {
		g.SetLimit(1)
	}

	for i := range pages {
		i := i
		g.Go(func() error {
			results[i] = p.processPage(pages[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reduce in page order so the reduction is independent of worker
	// completion order.
	var all []model.Element
	var stats Stats
	stats.Pages = len(pages)
	for _, r := range results {
		all = append(all, r.elements...)
		stats.Fragments += r.stats.Fragments
		stats.EmptyFragments += r.stats.EmptyFragments
		stats.MalformedFragments += r.stats.MalformedFragments
		stats.Superscripts += r.stats.Superscripts
		stats.Subscripts += r.stats.Subscripts
	}

	elements := layout.Sequence(all)
	stats.Elements = len(elements)

	builder := signature.NewBuilder(p.config.CatalogExamples, p.config.ExampleLength)
	for _, e := range elements {
		builder.Add(e)
	}

	return &Result{
		Elements: elements,
		Catalog:  builder.Catalog(),
		Stats:    stats,
	}, nil
}

// processPage runs the per-page pipeline: sanitize, merge, classify columns,
// attach markers, assemble lines.
func (p *Processor) processPage(page source.Page) pageResult {
	var result pageResult
	result.stats.Fragments = len(page.Fragments)

	clean, sanStats := span.Sanitize(page.Fragments)
	result.stats.EmptyFragments = sanStats.Empty
	result.stats.MalformedFragments = sanStats.Malformed

	elements := p.merger.Merge(clean)
	for i := range elements {
		elements[i].Column = layout.ClassifyColumn(elements[i].BBox.X, p.config.ColumnThreshold)
	}

	kept, attachStats := p.attacher.Attach(elements)
	result.stats.Superscripts = attachStats.Superscripts
	result.stats.Subscripts = attachStats.Subscripts

	result.elements = p.assembler.Assemble(page.Number, kept)
	return result
}

// EstimateThreshold derives a column threshold from a document's fragments
// using whitespace-gap analysis, page by page, taking the median of the
// per-page estimates. The second return is false when no page shows a
// two-column structure; the configured threshold should then stand. The
// estimate is never applied implicitly; pass it back in via
// Config.ColumnThreshold.
func EstimateThreshold(pages []source.Page) (float64, bool) {
	estimator := layout.NewThresholdEstimator()

	var estimates []float64
	for _, page := range pages {
		if t, ok := estimator.Estimate(page.Fragments); ok {
			estimates = append(estimates, t)
		}
	}
	if len(estimates) == 0 {
		return 0, false
	}

	sort.Float64s(estimates)
	return estimates[len(estimates)/2], true
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := folio.Must(folio.New().ProcessFragments(fragments))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
