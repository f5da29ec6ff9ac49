package domain

// Fact is an atomic proposition about the world (e.g. "son-at-home").
// Facts are opaque tokens compared only for equality; the planner never
// interprets their internal structure.
type Fact string

// Facts is an ordered, duplicate-free collection of facts.
//
// It deliberately keeps list semantics (insertion order, linear scans)
// instead of a map: catalogs and goal lists are small, and a stable order
// keeps traces and test output deterministic.
type Facts []Fact

// NewFacts builds a collection from the given facts, collapsing duplicates
// while preserving first-occurrence order.
func NewFacts(facts ...Fact) Facts {
	out := make(Facts, 0, len(facts))
	for _, f := range facts {
		if !out.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}

// Contains reports whether an equal fact exists in the collection.
func (fs Facts) Contains(fact Fact) bool {
	for _, f := range fs {
		if f == fact {
			return true
		}
	}
	return false
}

// Union returns all facts from fs plus the facts from other not already
// present. Neither input is modified.
func (fs Facts) Union(other Facts) Facts {
	out := make(Facts, 0, len(fs)+len(other))
	out = append(out, fs...)
	for _, f := range other {
		if !out.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}

// Difference returns the facts from fs that do not appear in other.
func (fs Facts) Difference(other Facts) Facts {
	out := make(Facts, 0, len(fs))
	for _, f := range fs {
		if !other.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns an independent copy of the collection.
func (fs Facts) Clone() Facts {
	out := make(Facts, len(fs))
	copy(out, fs)
	return out
}

// Strings converts the collection to a plain string slice, for rendering
// and serialization at the edges.
func (fs Facts) Strings() []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
