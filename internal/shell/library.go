package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/dbassse/kartoteka/internal/domain/library"
	"github.com/dbassse/kartoteka/internal/log"
	"github.com/dbassse/kartoteka/internal/presentation"
)

// LibrarySession wires a library catalog to an interactive shell.
func LibrarySession(in io.Reader, out io.Writer, logger *log.Logger, catalog *library.Catalog, dataDir, ext string) *Shell {
	s := New(in, out, logger, "LIBRARY CATALOG")

	s.Bind(
		Command{
			Name:    "add",
			Usage:   "add",
			Summary: "add a new book",
			Run: func([]string) error {
				return s.addBook(catalog, logger)
			},
		},
		Command{
			Name:    "list",
			Usage:   "list",
			Summary: "list every book in the catalog",
			Run: func([]string) error {
				s.println(presentation.BooksTable(catalog.Books()))
				logger.Info(log.CatLibrary, "listed books", "count", catalog.Len())
				return nil
			},
		},
		Command{
			Name:    "select",
			Usage:   "select <text>",
			Summary: "search by title, author or genre",
			MinArgs: 1,
			Run: func(args []string) error {
				query := strings.Join(args, " ")
				result := catalog.Search(query)
				s.println(presentation.SelectedBooksTable(query, result))
				logger.Info(log.CatLibrary, "searched catalog",
					"query", query, "matches", len(result))
				return nil
			},
		},
		Command{
			Name:    "save",
			Usage:   "save <file>",
			Summary: "save the catalog to an XML file",
			MinArgs: 1,
			Run: func(args []string) error {
				path := resolvePath(dataDir, args[0], ext)
				if err := catalog.Save(path); err != nil {
					return err
				}
				s.success(fmt.Sprintf("Saved %d records to %s", catalog.Len(), path))
				logger.Info(log.CatStore, "saved library catalog",
					"path", path, "count", catalog.Len())
				return nil
			},
		},
		Command{
			Name:    "load",
			Usage:   "load <file>",
			Summary: "load the catalog from an XML file",
			MinArgs: 1,
			Run: func(args []string) error {
				path := resolvePath(dataDir, args[0], ext)
				loaded, skipped, err := catalog.Load(path)
				if err != nil {
					return err
				}
				s.reportLoad(path, loaded, skipped)
				logger.Info(log.CatStore, "loaded library catalog",
					"path", path, "loaded", loaded, "skipped", skipped)
				return nil
			},
		},
	)
	return s
}

func (s *Shell) addBook(catalog *library.Catalog, logger *log.Logger) error {
	s.println("Adding a new book (empty input re-prompts, Ctrl-D aborts).")
	title, err := s.promptString("Title")
	if err != nil {
		return s.abortInput()
	}
	author, err := s.promptString("Author")
	if err != nil {
		return s.abortInput()
	}
	year, err := s.promptInt(fmt.Sprintf("Year (0-%d)", catalog.MaxYear()))
	if err != nil {
		return s.abortInput()
	}
	genre, err := s.promptString("Genre")
	if err != nil {
		return s.abortInput()
	}
	pages, err := s.promptInt("Pages")
	if err != nil {
		return s.abortInput()
	}

	b, err := catalog.Add(title, author, year, genre, pages)
	if err != nil {
		logger.ErrorErr(log.CatLibrary, "add rejected", err)
		return err
	}
	s.success(fmt.Sprintf("Added %q by %s (%d)", b.Title, b.Author, b.Year))
	logger.Info(log.CatLibrary, "book added",
		"title", b.Title, "author", b.Author, "year", b.Year)
	return nil
}
