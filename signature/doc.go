// Package signature computes typographic identities and accumulates the
// document-wide signature catalog.
//
// A signature is the canonical identity string for a fragment's typography:
// font name, size rounded to one decimal, and integer style flags, joined by
// underscores (for example "TimesNewRoman_9.5_4"). Identity is purely
// structural: any two fragments with the same font, size and flags share a
// signature. [Compute] derives it and [Parse] splits it back apart.
//
// The [Builder] accumulates per-signature frequency counts and example texts
// across a run. Accumulation is write-only and additive, and builders merge
// associatively, so independent page workers can tally locally and reduce at
// the end:
//
//	b := signature.NewBuilder(5, 50)
//	for _, elem := range elements {
//	    b.Add(elem)
//	}
//	catalog := b.Catalog()
//
// The finished [Catalog] answers frequency queries and lists entries in
// deterministic count-descending order.
package signature
