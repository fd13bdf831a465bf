package reporter

import (
	"html"
	"regexp"
	"sort"
	"strings"
)

// termSpec is one highlight term compiled against either raw or
// HTML-escaped text.
type termSpec struct {
	term    string
	pattern *regexp.Regexp
	class   string
	style   string
}

// highlightSpan marks one region of the text claimed by a term.
type highlightSpan struct {
	start int
	end   int
	spec  termSpec
}

// wordBoundaryTerm reports whether the term is matched on word boundaries.
// Only the bare "match"/"mismatch" tokens get boundaries; everything else
// is a plain substring, so configured phrases keep matching mid-token.
func wordBoundaryTerm(term string) bool {
	lower := strings.ToLower(term)
	return (lower == "match" || lower == "mismatch") && !strings.Contains(term, " ")
}

// cssClassFor picks the report CSS class for a highlight term.
func cssClassFor(term string) string {
	lower := strings.ToLower(term)
	switch {
	case lower == "match" && !strings.Contains(term, " "):
		return "match"
	case lower == "mismatch":
		return "mismatch"
	case strings.Contains(lower, "configuration"):
		return "configuration"
	default:
		return "highlight"
	}
}

// compileTerms builds the term specs, longest term first so a short term
// never claims text inside a longer one ("match" inside "mismatch").
// When escaped is true the patterns are built against HTML-escaped text.
func compileTerms(highlightWords map[string]string, escaped bool) []termSpec {
	terms := make([]termSpec, 0, len(highlightWords))
	for term, style := range highlightWords {
		literal := term
		if escaped {
			literal = html.EscapeString(term)
		}
		expr := `(?i)` + regexp.QuoteMeta(literal)
		if wordBoundaryTerm(term) {
			expr = `(?i)\b` + regexp.QuoteMeta(literal) + `\b`
		}
		terms = append(terms, termSpec{
			term:    term,
			pattern: regexp.MustCompile(expr),
			class:   cssClassFor(term),
			style:   style,
		})
	}

	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i].term) != len(terms[j].term) {
			return len(terms[i].term) > len(terms[j].term)
		}
		return terms[i].term < terms[j].term
	})
	return terms
}

// claimSpans finds all non-overlapping term occurrences in text, visiting
// terms longest-first so earlier (longer) claims win.
func claimSpans(text string, terms []termSpec) []highlightSpan {
	var spans []highlightSpan
	for _, spec := range terms {
		for _, loc := range spec.pattern.FindAllStringIndex(text, -1) {
			if overlapsAny(spans, loc[0], loc[1]) {
				continue
			}
			spans = append(spans, highlightSpan{start: loc[0], end: loc[1], spec: spec})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

func overlapsAny(spans []highlightSpan, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// HighlightHTML escapes the text for HTML and wraps every configured
// highlight term in a styled span. The class is chosen per term:
// "match" -> match, "mismatch" -> mismatch, terms containing
// "configuration" -> configuration, anything else -> highlight.
func HighlightHTML(text string, highlightWords map[string]string) string {
	escaped := html.EscapeString(text)
	if len(highlightWords) == 0 {
		return escaped
	}

	terms := compileTerms(highlightWords, true)
	spans := claimSpans(escaped, terms)

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(escaped[last:s.start])
		b.WriteString(`<span class="`)
		b.WriteString(s.spec.class)
		b.WriteString(`">`)
		b.WriteString(escaped[s.start:s.end])
		b.WriteString(`</span>`)
		last = s.end
	}
	b.WriteString(escaped[last:])
	return b.String()
}

// HighlightConsole wraps every configured highlight term with the ANSI code
// its style name resolves to in the given table.
func HighlightConsole(text string, highlightWords map[string]string, styles StyleTable) string {
	if len(highlightWords) == 0 {
		return text
	}

	terms := compileTerms(highlightWords, false)
	spans := claimSpans(text, terms)

	var b strings.Builder
	last := 0
	for _, s := range spans {
		code := styles.Resolve(s.spec.style)
		b.WriteString(text[last:s.start])
		if code != "" {
			b.WriteString(code)
			b.WriteString(text[s.start:s.end])
			b.WriteString(AnsiReset)
		} else {
			b.WriteString(text[s.start:s.end])
		}
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String()
}
