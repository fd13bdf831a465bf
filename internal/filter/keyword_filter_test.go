package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_DropsEmptyKeywords(t *testing.T) {
	matchers := Compile([]string{"error", "", "CCP: EPK"})

	require.Len(t, matchers, 2)
	assert.Equal(t, "error", matchers[0].Keyword())
	assert.Equal(t, "CCP: EPK", matchers[1].Keyword())
}

func TestMatcher_CaseInsensitive(t *testing.T) {
	m := Compile([]string{"error"})[0]

	assert.True(t, m.MatchesLine("Error: disk full"))
	assert.True(t, m.MatchesLine("an ERROR occurred"))
	assert.False(t, m.MatchesLine("all fine"))
}

func TestScan_MatchingLines(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "VEH_20250110_T120000.LOG")
	content := "startup ok\n  Error: disk full  \nall fine\nerror again\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	kf := NewKeywordFilter(zerolog.Nop())
	matches := kf.Scan(path, Compile([]string{"error"}))

	require.Len(t, matches, 2)

	assert.Equal(t, "VEH_20250110_T120000.LOG", matches[0].SourceFile)
	assert.Equal(t, 2, matches[0].LineNumber)
	assert.Equal(t, "Error: disk full", matches[0].Content, "content is trimmed")

	assert.Equal(t, 4, matches[1].LineNumber)
	assert.Equal(t, "error again", matches[1].Content)
}

func TestScan_OneMatchPerLine(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "trace.LOG")
	require.NoError(t, os.WriteFile(path, []byte("error and warning together\n"), 0644))

	kf := NewKeywordFilter(zerolog.Nop())
	matches := kf.Scan(path, Compile([]string{"error", "warning"}))

	assert.Len(t, matches, 1, "a line hitting several keywords is emitted once")
}

func TestScan_MissingFileYieldsEmpty(t *testing.T) {
	kf := NewKeywordFilter(zerolog.Nop())

	matches := kf.Scan(filepath.Join(t.TempDir(), "ghost.LOG"), Compile([]string{"error"}))

	assert.Empty(t, matches)
}

func TestScan_InvalidUTF8Replaced(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "trace.LOG")
	require.NoError(t, os.WriteFile(path, []byte("error \xff\xfe byte\n"), 0644))

	kf := NewKeywordFilter(zerolog.Nop())
	matches := kf.Scan(path, Compile([]string{"error"}))

	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].Content, "�")
}
