package source

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// Page holds one page's worth of raw fragments in the order native to the
// page. Fragment order is assumed to roughly follow natural reading order but
// need not be exact; final ordering is the layout stages' job.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Width and Height are the page dimensions in page units, when the
	// producer knows them. Zero when unknown; the core does not need them.
	Width  float64
	Height float64

	// Fragments are the raw positioned text runs of the page.
	Fragments []model.Fragment
}

// Source supplies pages of raw fragments to a processor.
type Source interface {
	// Pages returns all pages in ascending page order.
	Pages() ([]Page, error)
}

// sliceSource serves pre-built pages.
type sliceSource struct {
	pages []Page
}

// FromPages creates a source over pre-built pages, sorted by page number.
func FromPages(pages ...Page) Source {
	sorted := make([]Page, len(pages))
	copy(sorted, pages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})
	return &sliceSource{pages: sorted}
}

// FromFragments creates a source from a flat fragment list, grouping by the
// fragments' page numbers. Within a page, fragment order is preserved.
func FromFragments(fragments []model.Fragment) Source {
	byPage := make(map[int][]model.Fragment)
	var numbers []int
	for _, frag := range fragments {
		if _, ok := byPage[frag.Page]; !ok {
			numbers = append(numbers, frag.Page)
		}
		byPage[frag.Page] = append(byPage[frag.Page], frag)
	}
	sort.Ints(numbers)

	pages := make([]Page, 0, len(numbers))
	for _, n := range numbers {
		pages = append(pages, Page{Number: n, Fragments: byPage[n]})
	}

	return &sliceSource{pages: pages}
}

// Pages returns the pages in ascending page order.
func (s *sliceSource) Pages() ([]Page, error) {
	return s.pages, nil
}
