package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNewBBoxFromCorners(t *testing.T) {
	b := NewBBoxFromCorners(51.0, 100.0, 90.0, 112.0)

	if b.X != 51.0 || b.Y != 100.0 {
		t.Errorf("top-left = (%v, %v), want (51, 100)", b.X, b.Y)
	}
	if b.Width != 39.0 {
		t.Errorf("Width = %v, want 39", b.Width)
	}
	if b.Height != 12.0 {
		t.Errorf("Height = %v, want 12", b.Height)
	}
	if b.Right() != 90.0 {
		t.Errorf("Right() = %v, want 90", b.Right())
	}
	if b.Bottom() != 112.0 {
		t.Errorf("Bottom() = %v, want 112", b.Bottom())
	}
}

func TestBBoxCenterY(t *testing.T) {
	b := NewBBox(0, 100, 50, 12)
	if got := b.CenterY(); got != 106.0 {
		t.Errorf("CenterY() = %v, want 106", got)
	}
}

func TestBBoxUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want BBox
	}{
		{
			name: "Adjacent boxes on one line",
			a:    NewBBoxFromCorners(51, 100, 70, 112),
			b:    NewBBoxFromCorners(72, 100, 88, 112),
			want: NewBBoxFromCorners(51, 100, 88, 112),
		},
		{
			name: "Contained box",
			a:    NewBBox(0, 0, 100, 100),
			b:    NewBBox(10, 10, 20, 20),
			want: NewBBox(0, 0, 100, 100),
		},
		{
			name: "Disjoint boxes",
			a:    NewBBox(0, 0, 10, 10),
			b:    NewBBox(50, 50, 10, 10),
			want: NewBBox(0, 0, 60, 60),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Union(tt.b)
			if got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}

			// Union must be commutative
			if rev := tt.b.Union(tt.a); rev != got {
				t.Errorf("Union not commutative: %+v vs %+v", got, rev)
			}
		})
	}
}

func TestBBoxIsValid(t *testing.T) {
	tests := []struct {
		name string
		bbox BBox
		want bool
	}{
		{"Normal box", NewBBox(10, 10, 50, 12), true},
		{"Zero-size box", NewBBox(10, 10, 0, 0), true},
		{"Negative width", NewBBox(10, 10, -5, 12), false},
		{"Negative height", NewBBox(10, 10, 50, -1), false},
		{"NaN coordinate", NewBBox(math.NaN(), 10, 50, 12), false},
		{"Infinite width", NewBBox(10, 10, math.Inf(1), 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bbox.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnString(t *testing.T) {
	if ColumnLeft.String() != "left" {
		t.Errorf("ColumnLeft.String() = %q, want %q", ColumnLeft.String(), "left")
	}
	if ColumnRight.String() != "right" {
		t.Errorf("ColumnRight.String() = %q, want %q", ColumnRight.String(), "right")
	}
}

func TestColumnJSONRoundTrip(t *testing.T) {
	for _, col := range []Column{ColumnLeft, ColumnRight} {
		data, err := json.Marshal(col)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", col, err)
		}

		var got Column
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != col {
			t.Errorf("round trip = %v, want %v", got, col)
		}
	}

	var col Column
	if err := json.Unmarshal([]byte(`"middle"`), &col); err == nil {
		t.Error("expected error for unknown column name")
	}
}

func TestElementJSONShape(t *testing.T) {
	elem := Element{
		ID:          3,
		Page:        4,
		Text:        "Smith",
		Signature:   "Times_9.5_0",
		BBox:        NewBBox(51, 100, 30, 10),
		MergedCount: 2,
		LineID:      "p4_L0",
		LineNum:     0,
		Column:      ColumnLeft,
		LineStart:   true,
	}

	data, err := json.Marshal(elem)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if m["line_id"] != "p4_L0" {
		t.Errorf("line_id = %v, want p4_L0", m["line_id"])
	}
	if m["line_position"] != "left" {
		t.Errorf("line_position = %v, want left", m["line_position"])
	}
	if _, ok := m["superscripts"]; ok {
		t.Error("empty superscripts should be omitted")
	}

	pos, ok := m["position"].(map[string]interface{})
	if !ok {
		t.Fatalf("position has wrong shape: %v", m["position"])
	}
	if pos["w"] != 30.0 {
		t.Errorf("position.w = %v, want 30", pos["w"])
	}
}
