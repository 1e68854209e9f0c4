package slg

import "strconv"

// goalKey renders a canonical Goal into a string suitable for use as a map
// key, used to memoize the Table built for each distinct canonical goal
// (spec.md section 4.6: "Table (keyed by canonical goal)"). Go maps cannot
// use Goal itself as a key because Term/Predicate/Goal hold slices, which
// are not comparable; this is an injective encoding of the same structural
// identity Goal.Equal checks, built by tagging every node with its kind
// and length-prefixing every variable-length piece so that, e.g., the atom
// "a(b" can never be confused with a Compound boundary.
func goalKey(g Goal) string {
	var b []byte
	b = appendPredicateKey(b, g.Predicate)
	return string(b)
}

func appendPredicateKey(b []byte, p Predicate) []byte {
	b = appendLenPrefixed(b, p.Name)
	b = strconv.AppendInt(b, int64(len(p.Args)), 10)
	b = append(b, ':')
	for _, a := range p.Args {
		b = appendTermKey(b, a)
	}
	return b
}

func appendTermKey(b []byte, t Term) []byte {
	switch t.kind {
	case termAtom:
		b = append(b, 'A')
		b = appendLenPrefixed(b, t.atom)
	case termVariable:
		b = append(b, 'V')
		b = strconv.AppendInt(b, int64(t.v), 10)
		b = append(b, ';')
	case termCompound:
		b = append(b, 'C')
		b = appendLenPrefixed(b, t.atom)
		b = strconv.AppendInt(b, int64(len(t.args)), 10)
		b = append(b, ':')
		for _, a := range t.args {
			b = appendTermKey(b, a)
		}
	}
	return b
}

// appendLenPrefixed appends s prefixed with its byte length and a
// separator, so that concatenation of two keys can never be ambiguous
// regardless of what characters s itself contains.
func appendLenPrefixed(b []byte, s string) []byte {
	b = strconv.AppendInt(b, int64(len(s)), 10)
	b = append(b, '#')
	b = append(b, s...)
	return b
}
