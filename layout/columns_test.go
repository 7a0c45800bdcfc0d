package layout

import (
	"testing"

	"github.com/tsawler/folio/model"
)

func TestClassifyColumn(t *testing.T) {
	tests := []struct {
		name      string
		x0        float64
		threshold float64
		want      model.Column
	}{
		{"Left margin", 51.0, 305.0, model.ColumnLeft},
		{"Just inside left", 304.9, 305.0, model.ColumnLeft},
		{"On the threshold", 305.0, 305.0, model.ColumnRight},
		{"Right column", 306.0, 305.0, model.ColumnRight},
		{"Custom threshold", 306.0, 400.0, model.ColumnLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyColumn(tt.x0, tt.threshold); got != tt.want {
				t.Errorf("ClassifyColumn(%v, %v) = %v, want %v",
					tt.x0, tt.threshold, got, tt.want)
			}

			// Pure function: repeated calls agree.
			if again := ClassifyColumn(tt.x0, tt.threshold); again != tt.want {
				t.Errorf("ClassifyColumn not repeatable: %v then %v", tt.want, again)
			}
		})
	}
}

// colFrag builds a fragment at a horizontal range on a given line.
func colFrag(x0, x1, y0 float64) model.Fragment {
	return model.Fragment{
		Page: 1,
		Text: "text",
		Font: "F",
		Size: 10,
		BBox: model.NewBBoxFromCorners(x0, y0, x1, y0+12),
	}
}

func TestEstimateTwoColumnPage(t *testing.T) {
	var fragments []model.Fragment
	for y := 100.0; y < 400; y += 15 {
		fragments = append(fragments,
			colFrag(50, 280, y),  // left column
			colFrag(330, 560, y), // right column
		)
	}

	threshold, ok := NewThresholdEstimator().Estimate(fragments)
	if !ok {
		t.Fatal("expected a threshold for a two-column page")
	}

	// The gutter runs from 280 to 330; its center is the natural boundary.
	if threshold < 300 || threshold > 310 {
		t.Errorf("threshold = %v, want the gutter center near 305", threshold)
	}
}

func TestEstimateSingleColumnPage(t *testing.T) {
	var fragments []model.Fragment
	for y := 100.0; y < 400; y += 15 {
		fragments = append(fragments,
			colFrag(50, 200, y),
			colFrag(210, 380, y),
			colFrag(390, 560, y),
		)
	}

	if threshold, ok := NewThresholdEstimator().Estimate(fragments); ok {
		t.Errorf("expected no threshold for a single-column page, got %v", threshold)
	}
}

func TestEstimateIgnoresShallowGaps(t *testing.T) {
	// A wide gap on one line only (a header split, say) is bridged by the
	// spanning body lines and must not be taken for a column gutter.
	var fragments []model.Fragment
	fragments = append(fragments, colFrag(50, 150, 100), colFrag(400, 560, 100))
	for y := 120.0; y < 400; y += 15 {
		fragments = append(fragments, colFrag(50, 560, y))
	}

	if threshold, ok := NewThresholdEstimator().Estimate(fragments); ok {
		t.Errorf("expected no threshold, got %v", threshold)
	}
}

func TestEstimateIgnoresMarginalNotes(t *testing.T) {
	// A sparse strip of marginal notes leaves a wide gap, but almost all
	// fragments sit on one side of it; that is a margin, not a gutter.
	var fragments []model.Fragment
	for y := 100.0; y < 400; y += 15 {
		fragments = append(fragments, colFrag(50, 400, y))
	}
	fragments = append(fragments, colFrag(500, 560, 150), colFrag(500, 560, 300))

	if threshold, ok := NewThresholdEstimator().Estimate(fragments); ok {
		t.Errorf("expected no threshold, got %v", threshold)
	}
}

func TestEstimateDegenerateInput(t *testing.T) {
	if _, ok := NewThresholdEstimator().Estimate(nil); ok {
		t.Error("Estimate(nil) should not find a threshold")
	}
	if _, ok := NewThresholdEstimator().Estimate([]model.Fragment{colFrag(50, 100, 100)}); ok {
		t.Error("Estimate with one fragment should not find a threshold")
	}
}
