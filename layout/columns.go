package layout

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// DefaultColumnThreshold is the default left/right boundary in page units,
// suited to two-column layouts on letter/A4 pages. The threshold is a
// per-document-layout parameter; callers with unusual page geometry should
// override it or derive one with EstimateThreshold.
const DefaultColumnThreshold = 305.0

// ClassifyColumn assigns an element to a layout column from the left edge of
// its bounding box: left of the threshold is ColumnLeft, everything else
// ColumnRight. Pure function of its inputs; a single-column document
// degenerates to all elements in ColumnLeft.
func ClassifyColumn(x0, threshold float64) model.Column {
	if x0 < threshold {
		return model.ColumnLeft
	}
	return model.ColumnRight
}

// EstimatorConfig holds configuration for column threshold estimation.
type EstimatorConfig struct {
	// MinGapWidth is the minimum whitespace gap to consider as a column
	// separator. Default: 20 points
	MinGapWidth float64

	// MinSideFraction is the minimum share of the page's fragments that
	// must sit on each side of a gap for it to count as a column break.
	// Filters out gaps that merely isolate marginal notes or page numbers.
	// Default: 0.2
	MinSideFraction float64
}

// DefaultEstimatorConfig returns sensible default configuration.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		MinGapWidth:     20.0,
		MinSideFraction: 0.2,
	}
}

// ThresholdEstimator derives a per-document column threshold from the
// horizontal whitespace structure of a page's fragments, for documents whose
// gutter does not sit near the default boundary.
type ThresholdEstimator struct {
	config EstimatorConfig
}

// NewThresholdEstimator creates an estimator with default configuration.
func NewThresholdEstimator() *ThresholdEstimator {
	return &ThresholdEstimator{config: DefaultEstimatorConfig()}
}

// NewThresholdEstimatorWithConfig creates an estimator with custom configuration.
func NewThresholdEstimatorWithConfig(config EstimatorConfig) *ThresholdEstimator {
	return &ThresholdEstimator{config: config}
}

// slab is a horizontal range covered by text.
type slab struct {
	left, right float64
}

// Estimate analyzes fragment positions and returns the center of the widest
// qualifying vertical whitespace gap, which is the natural left/right
// boundary for the document. The second return is false when no qualifying
// gap exists (single-column page); callers should then keep their configured
// threshold.
func (e *ThresholdEstimator) Estimate(fragments []model.Fragment) (float64, bool) {
	if len(fragments) < 2 {
		return 0, false
	}

	slabs := make([]slab, 0, len(fragments))
	for _, f := range fragments {
		slabs = append(slabs, slab{left: f.BBox.X, right: f.BBox.Right()})
	}
	sort.Slice(slabs, func(i, j int) bool {
		return slabs[i].left < slabs[j].left
	})
	merged := mergeSlabs(slabs)

	var best float64
	var bestWidth float64
	found := false

	for i := 0; i < len(merged)-1; i++ {
		gapLeft := merged[i].right
		gapRight := merged[i+1].left
		gapWidth := gapRight - gapLeft

		if gapWidth < e.config.MinGapWidth {
			continue
		}
		if !e.balanced(fragments, (gapLeft+gapRight)/2) {
			continue
		}
		if !found || gapWidth > bestWidth {
			best = (gapLeft + gapRight) / 2
			bestWidth = gapWidth
			found = true
		}
	}

	return best, found
}

// mergeSlabs merges overlapping or near-adjacent horizontal slabs.
func mergeSlabs(slabs []slab) []slab {
	if len(slabs) == 0 {
		return nil
	}

	merged := []slab{slabs[0]}
	for _, current := range slabs[1:] {
		last := &merged[len(merged)-1]

		// Small tolerance absorbs kerning-level gaps.
		if current.left <= last.right+5.0 {
			if current.right > last.right {
				last.right = current.right
			}
		} else {
			merged = append(merged, current)
		}
	}

	return merged
}

// balanced reports whether enough of the page's fragments sit on each side
// of the candidate boundary for the gap to be a real gutter.
func (e *ThresholdEstimator) balanced(fragments []model.Fragment, boundary float64) bool {
	left := 0
	for _, f := range fragments {
		if f.BBox.X < boundary {
			left++
		}
	}
	right := len(fragments) - left

	min := e.config.MinSideFraction * float64(len(fragments))
	return float64(left) >= min && float64(right) >= min
}
