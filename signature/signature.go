package signature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/folio/model"
)

// Placeholder is substituted for fragments whose source reported no font
// name. Using a fixed placeholder keeps signature computation total: an
// unknown font is an identity of its own, not an error.
const Placeholder = "Unknown"

// Delimiter separates the font, size and flags fields of a signature.
const Delimiter = "_"

// Compute derives the canonical typographic identity of a fragment.
//
// The signature is the font name (or [Placeholder] when absent), the size
// rounded to one decimal, and the integer style-flag value, joined by
// [Delimiter]. Two fragments with identical font, size and flags always map
// to the same signature; the function is pure and has no failure modes.
func Compute(frag model.Fragment) string {
	font := frag.Font
	if font == "" {
		font = Placeholder
	}
	return fmt.Sprintf("%s%s%.1f%s%d", font, Delimiter, frag.Size, Delimiter, frag.Flags)
}

// Parse splits a signature back into its font, size and flags fields.
//
// Font names may themselves contain the delimiter, so the signature is split
// from the right: the last two fields are size and flags, everything before
// them is the font.
func Parse(sig string) (font string, size float64, flags int, err error) {
	i := strings.LastIndex(sig, Delimiter)
	if i < 0 {
		return "", 0, 0, fmt.Errorf("malformed signature %q", sig)
	}
	flags, err = strconv.Atoi(sig[i+1:])
	if err != nil {
		return "", 0, 0, fmt.Errorf("malformed signature %q: %w", sig, err)
	}

	rest := sig[:i]
	j := strings.LastIndex(rest, Delimiter)
	if j < 0 {
		return "", 0, 0, fmt.Errorf("malformed signature %q", sig)
	}
	size, err = strconv.ParseFloat(rest[j+1:], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("malformed signature %q: %w", sig, err)
	}

	return rest[:j], size, flags, nil
}

// Size extracts just the font size from a signature, returning 0 when the
// signature cannot be parsed. Used by the superscript attacher, where a
// malformed signature simply means the element is not a marker candidate.
func Size(sig string) float64 {
	_, size, _, err := Parse(sig)
	if err != nil {
		return 0
	}
	return size
}
