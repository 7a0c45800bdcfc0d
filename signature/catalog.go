package signature

import (
	"encoding/json"
	"sort"

	"github.com/tsawler/folio/model"
)

// Entry holds the accumulated statistics for one signature.
type Entry struct {
	// Signature is the catalog key.
	Signature string `json:"-"`

	// Font, Size and Flags are the parsed fields of the signature.
	Font  string  `json:"font"`
	Size  float64 `json:"size"`
	Flags int     `json:"flags"`

	// Count is the number of elements observed with this signature.
	Count int `json:"count"`

	// Examples holds up to the configured number of distinct example texts
	// in first-seen order, each truncated to the configured length.
	Examples []string `json:"examples"`

	firstSeen int
}

// hasExample reports whether the entry already recorded this example text.
func (e *Entry) hasExample(text string) bool {
	for _, ex := range e.Examples {
		if ex == text {
			return true
		}
	}
	return false
}

// Builder accumulates per-signature counts and example texts.
//
// State is purely additive: entries are created on first observation and only
// ever incremented afterward. Builders from independent page workers combine
// with [Builder.Merge], which is associative, so per-page tallies reduce to
// the same catalog regardless of how the work was split.
type Builder struct {
	exampleLimit  int
	exampleLength int

	entries map[string]*Entry
	nextID  int
}

// NewBuilder creates a catalog builder. exampleLimit caps the number of
// distinct example texts kept per signature and exampleLength caps the length
// of each example in runes; non-positive values disable example collection.
func NewBuilder(exampleLimit, exampleLength int) *Builder {
	return &Builder{
		exampleLimit:  exampleLimit,
		exampleLength: exampleLength,
		entries:       make(map[string]*Entry),
	}
}

// Add records one element's signature.
func (b *Builder) Add(elem model.Element) {
	entry, ok := b.entries[elem.Signature]
	if !ok {
		font, size, flags, err := Parse(elem.Signature)
		if err != nil {
			// Unparseable signatures still get counted under their raw key.
			font = elem.Signature
		}
		entry = &Entry{
			Signature: elem.Signature,
			Font:      font,
			Size:      size,
			Flags:     flags,
			firstSeen: b.nextID,
		}
		b.nextID++
		b.entries[elem.Signature] = entry
	}

	entry.Count++
	b.addExample(entry, elem.Text)
}

// addExample records an example text if there is room and it is new.
func (b *Builder) addExample(entry *Entry, text string) {
	if b.exampleLimit <= 0 || len(entry.Examples) >= b.exampleLimit {
		return
	}

	if runes := []rune(text); len(runes) > b.exampleLength {
		text = string(runes[:b.exampleLength])
	}
	if text == "" || entry.hasExample(text) {
		return
	}

	entry.Examples = append(entry.Examples, text)
}

// Merge folds another builder's tallies into this one. Counts add; examples
// from the other builder fill remaining example slots in their first-seen
// order. Merging page builders in page order yields a deterministic catalog.
func (b *Builder) Merge(other *Builder) {
	sigs := make([]*Entry, 0, len(other.entries))
	for _, e := range other.entries {
		sigs = append(sigs, e)
	}
	sort.Slice(sigs, func(i, j int) bool {
		return sigs[i].firstSeen < sigs[j].firstSeen
	})

	for _, src := range sigs {
		entry, ok := b.entries[src.Signature]
		if !ok {
			entry = &Entry{
				Signature: src.Signature,
				Font:      src.Font,
				Size:      src.Size,
				Flags:     src.Flags,
				firstSeen: b.nextID,
			}
			b.nextID++
			b.entries[src.Signature] = entry
		}

		entry.Count += src.Count
		for _, ex := range src.Examples {
			if b.exampleLimit <= 0 || len(entry.Examples) >= b.exampleLimit {
				break
			}
			if !entry.hasExample(ex) {
				entry.Examples = append(entry.Examples, ex)
			}
		}
	}
}

// Catalog returns the finished catalog. The builder may continue to
// accumulate afterward; the catalog shares entry storage with the builder and
// should be taken once accumulation is complete.
func (b *Builder) Catalog() *Catalog {
	return &Catalog{entries: b.entries}
}

// Catalog is the document-wide frequency and example index of all observed
// signatures. The key set is exactly the set of distinct signatures seen.
type Catalog struct {
	entries map[string]*Entry
}

// Len returns the number of distinct signatures.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Get returns the entry for a signature, if present.
func (c *Catalog) Get(sig string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.entries[sig]
	return e, ok
}

// Entries returns all entries sorted by descending count, with first-seen
// order and then signature as tie-breaks so the result is stable across runs.
func (c *Catalog) Entries() []*Entry {
	if c == nil {
		return nil
	}

	out := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].firstSeen != out[j].firstSeen {
			return out[i].firstSeen < out[j].firstSeen
		}
		return out[i].Signature < out[j].Signature
	})

	return out
}

// MarshalJSON encodes the catalog as a signature-keyed object, the shape
// downstream tooling consumes.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.entries)
}
