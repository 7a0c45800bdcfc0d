package export

import (
	"fmt"
	"io"

	"github.com/tsawler/folio/signature"
)

// Size bands for the report's size view, in points.
const (
	largeSizeMin  = 12.0
	mediumSizeMin = 8.0
)

// WriteReport writes a plain-text analysis of a signature catalog: a
// frequency view of every signature with its share of all elements, then a
// size view grouping signatures into large, medium and small bands. Meant
// for eyeballing which signatures carry body text and which carry notes.
func WriteReport(w io.Writer, catalog *signature.Catalog) error {
	entries := catalog.Entries()

	total := 0
	for _, entry := range entries {
		total += entry.Count
	}

	if _, err := fmt.Fprintf(w, "Typographic signatures: %d distinct, %d elements\n\n", len(entries), total); err != nil {
		return err
	}

	if err := writeFrequencyView(w, entries, total); err != nil {
		return err
	}
	return writeSizeView(w, entries, total)
}

// writeFrequencyView lists signatures most-used first.
func writeFrequencyView(w io.Writer, entries []*signature.Entry, total int) error {
	if _, err := fmt.Fprintln(w, "By frequency:"); err != nil {
		return err
	}

	for i, entry := range entries {
		example := ""
		if len(entry.Examples) > 0 {
			example = entry.Examples[0]
		}
		if _, err := fmt.Fprintf(w, "%4d  %-40s %6d  %5.1f%%  %s\n",
			i+1, entry.Signature, entry.Count, percentage(entry.Count, total), example); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}

// writeSizeView groups signatures into point-size bands, largest first.
func writeSizeView(w io.Writer, entries []*signature.Entry, total int) error {
	bands := []struct {
		title string
		match func(size float64) bool
	}{
		{fmt.Sprintf("Large (>= %.0fpt):", largeSizeMin), func(s float64) bool { return s >= largeSizeMin }},
		{fmt.Sprintf("Medium (%.0f-%.0fpt):", mediumSizeMin, largeSizeMin), func(s float64) bool { return s >= mediumSizeMin && s < largeSizeMin }},
		{fmt.Sprintf("Small (< %.0fpt):", mediumSizeMin), func(s float64) bool { return s < mediumSizeMin }},
	}

	if _, err := fmt.Fprintln(w, "By size:"); err != nil {
		return err
	}

	for _, band := range bands {
		if _, err := fmt.Fprintf(w, "\n%s\n", band.title); err != nil {
			return err
		}
		for _, entry := range entries {
			if !band.match(entry.Size) {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %-40s size %5.1fpt  count %4d (%5.1f%%)\n",
				entry.Signature, entry.Size, entry.Count, percentage(entry.Count, total)); err != nil {
				return err
			}
		}
	}

	return nil
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
