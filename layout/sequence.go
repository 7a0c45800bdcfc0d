package layout

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// FirstID is the identifier assigned to the first element in reading order.
const FirstID = 0

// Sequence fixes the final total order of the element stream and assigns
// contiguous, strictly increasing ids starting at FirstID.
//
// Elements are ordered by (page, column, line number, left edge), which is a
// pure function of the input geometry: pages processed concurrently and
// reduced in any completion order still sequence identically. Returns a new
// slice; the input is not modified.
func Sequence(elements []model.Element) []model.Element {
	out := make([]model.Element, len(elements))
	copy(out, elements)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		if out[i].Column != out[j].Column {
			return out[i].Column < out[j].Column
		}
		if out[i].LineNum != out[j].LineNum {
			return out[i].LineNum < out[j].LineNum
		}
		return out[i].BBox.X < out[j].BBox.X
	})

	for i := range out {
		out[i].ID = FirstID + i
	}

	return out
}
