package entity

import "regexp"

// kindPattern is a pre-compiled pattern for one entity kind. When group is
// non-zero, the entity value comes from that capture group instead of the
// whole match; the span always covers the whole match.
type kindPattern struct {
	kind  Kind
	re    *regexp.Regexp
	group int
}

// Extractor pulls typed entities out of raw text using an immutable,
// ordered pattern catalog.
type Extractor struct {
	patterns []kindPattern
}

// NewExtractor creates an extractor with the built-in pattern catalog.
// Kinds are evaluated in a fixed order: Date, Time, Location, Email, Phone,
// Number. Phone precedes Number so digit runs consumed by a phone match are
// not reported again as bare numbers.
func NewExtractor() *Extractor {
	return &Extractor{
		patterns: []kindPattern{
			{
				kind: KindDate,
				re:   regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}|today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
			},
			{
				kind: KindTime,
				re:   regexp.MustCompile(`\b(\d{1,2}:\d{2}(?:\s?(?:am|pm))?|\d{1,2}\s?(?:am|pm))\b`),
			},
			{
				kind:  KindLocation,
				re:    regexp.MustCompile(`\b(?:in|at|from|to)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`),
				group: 1,
			},
			{
				kind: KindEmail,
				re:   regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`),
			},
			{
				kind: KindPhone,
				re:   regexp.MustCompile(`\b(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
			},
			{
				kind: KindNumber,
				re:   regexp.MustCompile(`\b\d+\b`),
			},
		},
	}
}

// Extract returns all entities found in text. Each kind is scanned once, in
// catalog order, collecting non-overlapping matches left to right; the
// result is the concatenation across kinds in that order. No matches yields
// an empty slice.
func (e *Extractor) Extract(text string) []Entity {
	entities := []Entity{}
	var phoneSpans [][2]int

	for _, p := range e.patterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[0], m[1]

			if p.kind == KindNumber && insideAny(phoneSpans, start, end) {
				continue
			}
			if p.kind == KindPhone {
				phoneSpans = append(phoneSpans, [2]int{start, end})
			}

			value := text[start:end]
			if p.group > 0 && m[2*p.group] >= 0 {
				value = text[m[2*p.group] : m[2*p.group+1]]
			}

			entities = append(entities, Entity{
				Kind:  p.kind,
				Value: value,
				Start: start,
				End:   end,
			})
		}
	}

	return entities
}

// ExtractByKind returns only the entities of the given kind, in order of
// appearance.
func (e *Extractor) ExtractByKind(text string, kind Kind) []Entity {
	var out []Entity
	for _, ent := range e.Extract(text) {
		if ent.Kind == kind {
			out = append(out, ent)
		}
	}
	return out
}

// insideAny reports whether [start, end) is contained in any of spans.
func insideAny(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start >= s[0] && end <= s[1] {
			return true
		}
	}
	return false
}
