package layout

import (
	"fmt"
	"sort"

	"github.com/tsawler/folio/model"
)

// AssemblerConfig holds configuration for line assembly.
type AssemblerConfig struct {
	// YTolerance is the maximum distance between vertical centers for two
	// elements to share a line. Default: 3.0 units
	YTolerance float64
}

// DefaultAssemblerConfig returns sensible default configuration.
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{YTolerance: 3.0}
}

// Assembler groups a page's elements into lines and numbers them in
// column-major reading order.
type Assembler struct {
	config AssemblerConfig
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return &Assembler{config: DefaultAssemblerConfig()}
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config AssemblerConfig) *Assembler {
	return &Assembler{config: config}
}

// Assemble groups one page's column-classified elements into lines and
// assigns LineID, LineNum and LineStart.
//
// Reading order across the page is column-major: every line of the left
// column top to bottom, then every line of the right column. Two-column
// layouts read down a column before crossing to the next, so a naive
// top-to-bottom merge across columns would interleave unrelated lines. The
// line counter runs once per page across both columns, LineID is
// "p<page>_L<line_num>", and LineStart marks exactly the leftmost element of
// each line.
//
// Returns a new slice in reading order; the input is not modified.
func (a *Assembler) Assemble(page int, elements []model.Element) []model.Element {
	if len(elements) == 0 {
		return nil
	}

	var left, right []model.Element
	for _, elem := range elements {
		if elem.Column == model.ColumnRight {
			right = append(right, elem)
		} else {
			left = append(left, elem)
		}
	}

	out := make([]model.Element, 0, len(elements))
	lineNum := 0

	for _, column := range [][]model.Element{left, right} {
		for _, line := range a.groupIntoLines(column) {
			// Leftmost first within the line; stable so source order
			// breaks exact ties.
			sort.SliceStable(line, func(i, j int) bool {
				return line[i].BBox.X < line[j].BBox.X
			})

			for i := range line {
				line[i].LineID = fmt.Sprintf("p%d_L%d", page, lineNum)
				line[i].LineNum = lineNum
				line[i].LineStart = i == 0
			}

			out = append(out, line...)
			lineNum++
		}
	}

	return out
}

// groupIntoLines bands elements whose vertical centers fall within
// YTolerance of a line's anchor, then orders the bands top to bottom.
func (a *Assembler) groupIntoLines(elements []model.Element) [][]model.Element {
	if len(elements) == 0 {
		return nil
	}

	var lines [][]model.Element

	for _, elem := range elements {
		center := elem.BBox.CenterY()

		found := false
		for i := range lines {
			anchor := lines[i][0].BBox.CenterY()
			if abs(center-anchor) <= a.config.YTolerance {
				lines[i] = append(lines[i], elem)
				found = true
				break
			}
		}

		if !found {
			lines = append(lines, []model.Element{elem})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i][0].BBox.CenterY() < lines[j][0].BBox.CenterY()
	})

	return lines
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
