package reporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testHighlights = map[string]string{
	"mismatch":            "red",
	"match":               "green",
	"Configuration file:": "blue",
}

func TestHighlightHTML_EscapesFirst(t *testing.T) {
	out := HighlightHTML(`a < b & "c"`, nil)

	assert.Equal(t, "a &lt; b &amp; &#34;c&#34;", out)
}

func TestHighlightHTML_MatchAndMismatch(t *testing.T) {
	out := HighlightHTML("Protocols: match and mismatch", testHighlights)

	assert.Contains(t, out, `<span class="match">match</span>`)
	assert.Contains(t, out, `<span class="mismatch">mismatch</span>`)
	// "match" inside "mismatch" must not be claimed a second time.
	assert.Equal(t, 1, strings.Count(out, `<span class="match">`))
}

func TestHighlightHTML_WordBoundaries(t *testing.T) {
	// "match" embedded in a longer token is not highlighted.
	out := HighlightHTML("rematched values", testHighlights)

	assert.Equal(t, "rematched values", out)
}

func TestHighlightHTML_ConfigurationClass(t *testing.T) {
	out := HighlightHTML("Configuration file: MEA_cfg.xml", testHighlights)

	assert.Contains(t, out, `<span class="configuration">Configuration file:</span>`)
}

func TestHighlightHTML_GenericTermGetsHighlightClass(t *testing.T) {
	out := HighlightHTML("CCP: EPK version 3", map[string]string{"CCP: EPK": "yellow"})

	assert.Contains(t, out, `<span class="highlight">CCP: EPK</span>`)
}

func TestHighlightHTML_CaseInsensitive(t *testing.T) {
	out := HighlightHTML("MISMATCH detected", testHighlights)

	assert.Contains(t, out, `<span class="mismatch">MISMATCH</span>`)
}

func TestHighlightConsole_WrapsWithAnsiCodes(t *testing.T) {
	styles := DefaultStyleTable()

	out := HighlightConsole("Protocols: match", testHighlights, styles)

	assert.Equal(t, "Protocols: "+AnsiGreen+"match"+AnsiReset, out)
}

func TestHighlightConsole_UnknownStyleLeftPlain(t *testing.T) {
	styles := DefaultStyleTable()

	out := HighlightConsole("value match", map[string]string{"match": "purple"}, styles)

	assert.Equal(t, "value match", out)
}

func TestHighlightConsole_NoHighlightsPassThrough(t *testing.T) {
	out := HighlightConsole("plain line", nil, DefaultStyleTable())

	assert.Equal(t, "plain line", out)
}
