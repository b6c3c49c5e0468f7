package glossary

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const testGlossary = `
terms:
  TEU: Twenty-foot Equivalent Unit
  BOA: Berth on Arrival
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"content/glossary.yaml": {Data: []byte(testGlossary)}}

	terms, err := Load(fsys, "content/glossary.yaml")

	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"TEU": "Twenty-foot Equivalent Unit",
		"BOA": "Berth on Arrival",
	}, terms)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "glossary.yaml")

	require.Error(t, err)
	require.Contains(t, err.Error(), "read glossary.yaml")
}

func TestLoad_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{"glossary.yaml": {Data: []byte("terms: [")}}

	_, err := Load(fsys, "glossary.yaml")

	require.Error(t, err)
	require.Contains(t, err.Error(), "parse glossary.yaml")
}

func TestParse_EmptyTerm(t *testing.T) {
	_, err := Parse([]byte("terms:\n  \"\": nothing\n"))

	require.ErrorIs(t, err, ErrEmptyTerm)
}

func TestParse_NoTerms(t *testing.T) {
	terms, err := Parse([]byte("{}"))

	require.NoError(t, err)
	require.NotNil(t, terms)
	require.Empty(t, terms)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testGlossary), 0o600))

	terms, err := LoadFile(path)

	require.NoError(t, err)
	require.Len(t, terms, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := map[string]string{"TEU": "Twenty-foot Equivalent Unit", "BOA": "Berth on Arrival"}
	override := map[string]string{"BOA": "Berth On Arrival (local usage)", "QC": "Quay Crane"}

	got := Merge(base, override)

	require.Equal(t, map[string]string{
		"TEU": "Twenty-foot Equivalent Unit",
		"BOA": "Berth On Arrival (local usage)",
		"QC":  "Quay Crane",
	}, got)
	require.Equal(t, "Berth on Arrival", base["BOA"])
}
