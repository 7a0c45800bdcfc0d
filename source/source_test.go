package source

import (
	"strings"
	"testing"

	"github.com/tsawler/folio/model"
)

func frag(page int, text string, x, y float64) model.Fragment {
	return model.Fragment{
		Page: page,
		Text: text,
		Font: "Times",
		Size: 9.5,
		BBox: model.NewBBox(x, y, 40, 10),
	}
}

func TestFromPagesSortsByNumber(t *testing.T) {
	src := FromPages(
		Page{Number: 3},
		Page{Number: 1},
		Page{Number: 2},
	)

	pages, err := src.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	for i, want := range []int{1, 2, 3} {
		if pages[i].Number != want {
			t.Errorf("page[%d].Number = %d, want %d", i, pages[i].Number, want)
		}
	}
}

func TestFromFragmentsGroupsByPage(t *testing.T) {
	src := FromFragments([]model.Fragment{
		frag(2, "second page", 51, 100),
		frag(1, "first", 51, 100),
		frag(1, "page", 95, 100),
	})

	pages, err := src.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].Number != 1 || pages[1].Number != 2 {
		t.Errorf("page numbers = %d, %d, want 1, 2", pages[0].Number, pages[1].Number)
	}

	// Within a page, source order is preserved.
	if pages[0].Fragments[0].Text != "first" || pages[0].Fragments[1].Text != "page" {
		t.Errorf("page 1 order = %q, %q, want first, page",
			pages[0].Fragments[0].Text, pages[0].Fragments[1].Text)
	}
	if len(pages[1].Fragments) != 1 {
		t.Errorf("page 2 has %d fragments, want 1", len(pages[1].Fragments))
	}
}

func TestFromFragmentsEmpty(t *testing.T) {
	pages, err := FromFragments(nil).Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("got %d pages, want 0", len(pages))
	}
}

func TestReadJSON(t *testing.T) {
	dump := `[
		{"page": 1, "text": "This", "font": "Times", "size": 9.5, "flags": 0, "bbox": [51.0, 100.0, 70.0, 110.0]},
		{"page": 1, "text": "is", "font": "Times", "size": 9.5, "flags": 0, "bbox": [72.0, 100.0, 80.0, 110.0]},
		{"page": 2, "text": "next", "font": "Helvetica", "size": 12.0, "flags": 4, "bbox": [51.0, 100.0, 90.0, 113.0]}
	]`

	src, stats, err := ReadJSON(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if stats.Records != 3 || stats.Skipped != 0 {
		t.Errorf("stats = %+v, want 3 records, 0 skipped", stats)
	}

	pages, err := src.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}

	got := pages[0].Fragments[0]
	if got.Text != "This" || got.Font != "Times" || got.Size != 9.5 {
		t.Errorf("fragment = %+v", got)
	}
	if got.BBox.X != 51 || got.BBox.Y != 100 || got.BBox.Width != 19 || got.BBox.Height != 10 {
		t.Errorf("bbox = %+v, want corners (51,100,70,110)", got.BBox)
	}

	if pages[1].Fragments[0].Flags != 4 {
		t.Errorf("flags = %d, want 4", pages[1].Fragments[0].Flags)
	}
}

func TestReadJSONSkipsBrokenRecords(t *testing.T) {
	dump := `[
		{"page": 0, "text": "bad page", "font": "Times", "size": 9.5, "flags": 0, "bbox": [51, 100, 70, 110]},
		{"page": 1, "text": "bad bbox", "font": "Times", "size": 9.5, "flags": 0, "bbox": [51, 100]},
		{"page": 1, "text": "good", "font": "Times", "size": 9.5, "flags": 0, "bbox": [51, 100, 70, 110]}
	]`

	src, stats, err := ReadJSON(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if stats.Records != 3 || stats.Skipped != 2 {
		t.Errorf("stats = %+v, want 3 records, 2 skipped", stats)
	}

	pages, _ := src.Pages()
	if len(pages) != 1 || len(pages[0].Fragments) != 1 {
		t.Fatalf("pages = %+v, want one page with one fragment", pages)
	}
	if pages[0].Fragments[0].Text != "good" {
		t.Errorf("kept %q, want good", pages[0].Fragments[0].Text)
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, _, err := ReadJSON(strings.NewReader(`{"not": "an array"`)); err == nil {
		t.Error("ReadJSON accepted malformed JSON")
	}
}
