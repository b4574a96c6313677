package shell

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbassse/kartoteka/internal/domain/library"
	"github.com/dbassse/kartoteka/internal/log"
)

func TestLibrarySession_FullScript(t *testing.T) {
	dir := t.TempDir()
	catalog := library.NewCatalog(library.DefaultMaxYear)

	script := strings.Join([]string{
		"add",
		"Книга C", // title
		"Автор C", // author
		"2000",    // year
		"Жанр C",  // genre
		"100",     // pages
		"list",
		"select книга c",
		"select нет такого",
		"save books",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := LibrarySession(strings.NewReader(script), &out, log.Nop(), catalog, dir, ".xml")
	require.NoError(t, s.Run())

	got := out.String()
	require.Contains(t, got, `Added "Книга C" by Автор C (2000)`)
	require.Contains(t, got, `Books matching "книга c" (1):`)
	require.Contains(t, got, `No books matching "нет такого".`)
	require.Contains(t, got, "Saved 1 records to "+filepath.Join(dir, "books.xml"))
	require.FileExists(t, filepath.Join(dir, "books.xml"))
}

func TestLibrarySession_RejectedAddKeepsLoopAlive(t *testing.T) {
	dir := t.TempDir()
	catalog := library.NewCatalog(2024)

	script := strings.Join([]string{
		"add",
		"Future Book",
		"Nobody",
		"2030", // beyond the catalog ceiling
		"SF",
		"200",
		"list",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := LibrarySession(strings.NewReader(script), &out, log.Nop(), catalog, dir, ".xml")
	require.NoError(t, s.Run())

	require.Contains(t, out.String(), "Error:")
	require.Contains(t, out.String(), "The library catalog is empty.")
	require.Zero(t, catalog.Len())
}

func TestLibrarySession_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()

	first := library.NewCatalog(library.DefaultMaxYear)
	_, err := first.Add("Книга A", "Автор A", 1999, "Жанр A", 320)
	require.NoError(t, err)
	require.NoError(t, first.Save(filepath.Join(dir, "books.xml")))

	second := library.NewCatalog(library.DefaultMaxYear)
	var out bytes.Buffer
	s := LibrarySession(strings.NewReader("load books\nlist\nexit\n"), &out, log.Nop(), second, dir, ".xml")
	require.NoError(t, s.Run())

	require.Contains(t, out.String(), "Loaded 1 records from "+filepath.Join(dir, "books.xml"))
	require.Contains(t, out.String(), "Книга A")
	require.Equal(t, 1, second.Len())
}
