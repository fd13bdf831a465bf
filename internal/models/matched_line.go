package models

// MatchedLine is a single log line that matched at least one keyword.
// SourceFile holds the base name of the originating file, LineNumber is
// 1-based, and Content is the line trimmed of surrounding whitespace.
type MatchedLine struct {
	SourceFile string
	LineNumber int
	Content    string
}
