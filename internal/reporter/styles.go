package reporter

import "strings"

// ANSI escape codes for console emphasis.
const (
	AnsiGreen  = "\033[92m"
	AnsiRed    = "\033[91m"
	AnsiBlue   = "\033[94m"
	AnsiYellow = "\033[93m"
	AnsiReset  = "\033[0m"
)

// StyleTable maps configured style names to console escape codes. It is
// passed explicitly into the rendering functions rather than read from
// ambient state, so callers stay in control of the styling.
type StyleTable map[string]string

// DefaultStyleTable returns the style names accepted in configuration.
func DefaultStyleTable() StyleTable {
	return StyleTable{
		"green":  AnsiGreen,
		"red":    AnsiRed,
		"blue":   AnsiBlue,
		"yellow": AnsiYellow,
	}
}

// Resolve maps a configured style name to its escape code. Unknown names
// resolve to no styling.
func (st StyleTable) Resolve(name string) string {
	return st[strings.ToLower(name)]
}
