package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbassse/kartoteka/internal/storage"
)

func TestCatalog_SaveLoadRoundTrip(t *testing.T) {
	c := NewCatalog(DefaultMaxYear)
	mustAddBook(t, c, "Мастер и Маргарита", "Булгаков", "Роман")
	mustAddBook(t, c, "War and Peace", "Tolstoy", "Novel")

	path := filepath.Join(t.TempDir(), "library.xml")
	require.NoError(t, c.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`))

	fresh := NewCatalog(DefaultMaxYear)
	loaded, skipped, err := fresh.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded)
	require.Zero(t, skipped)
	require.Equal(t, c.Books(), fresh.Books())
}

const mixedLibraryXML = `<?xml version="1.0" encoding="UTF-8"?>
<library>
  <book>
    <title>Good Book</title>
    <author>Author A</author>
    <year>1967</year>
    <genre>Novel</genre>
    <pages>384</pages>
  </book>
  <book>
    <title>No Genre</title>
    <author>Author B</author>
    <year>1980</year>
    <pages>100</pages>
  </book>
  <book>
    <title>Bad Pages</title>
    <author>Author C</author>
    <year>1990</year>
    <genre>Novel</genre>
    <pages>many</pages>
  </book>
  <book>
    <title>Future Book</title>
    <author>Author D</author>
    <year>3000</year>
    <genre>Sci-Fi</genre>
    <pages>200</pages>
  </book>
</library>
`

func TestCatalog_LoadSkipsMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.xml")
	require.NoError(t, os.WriteFile(path, []byte(mixedLibraryXML), 0644))

	c := NewCatalog(DefaultMaxYear)
	loaded, skipped, err := c.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, loaded)
	require.Equal(t, 3, skipped)
	require.Equal(t, "Good Book", c.Books()[0].Title)
}

func TestCatalog_LoadHonorsCeiling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.xml")
	require.NoError(t, os.WriteFile(path, []byte(mixedLibraryXML), 0644))

	// With a ceiling above 3000 the future book becomes loadable.
	c := NewCatalog(3500)
	loaded, skipped, err := c.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded)
	require.Equal(t, 2, skipped)
}

func TestCatalog_LoadStructuralFailureLeavesCatalogUntouched(t *testing.T) {
	dir := t.TempDir()

	c := NewCatalog(DefaultMaxYear)
	mustAddBook(t, c, "War and Peace", "Tolstoy", "Novel")
	before := c.Books()

	_, _, err := c.Load(filepath.Join(dir, "absent.xml"))
	var formatErr *storage.DataFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, before, c.Books())
}
