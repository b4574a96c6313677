package shell

import (
	"io"
	"path/filepath"
	"strconv"

	"github.com/dbassse/kartoteka/internal/domain/birthday"
	"github.com/dbassse/kartoteka/internal/log"
	"github.com/dbassse/kartoteka/internal/presentation"
)

// BirthdaySession wires a birthday book to an interactive shell.
func BirthdaySession(in io.Reader, out io.Writer, logger *log.Logger, book *birthday.Book, dataDir, ext string) *Shell {
	s := New(in, out, logger, "BIRTHDAY BOOK")

	s.Bind(
		Command{
			Name:    "add",
			Usage:   "add",
			Summary: "add a new person",
			Run: func([]string) error {
				return s.addPerson(book, logger)
			},
		},
		Command{
			Name:    "list",
			Usage:   "list",
			Summary: "list everyone in the book",
			Run: func([]string) error {
				s.println(presentation.PeopleTable(book.People()))
				logger.Info(log.CatBirthdays, "listed people", "count", book.Len())
				return nil
			},
		},
		Command{
			Name:    "filter",
			Usage:   "filter <month>",
			Summary: "show birthdays in a month (1-12)",
			MinArgs: 1,
			Run: func(args []string) error {
				month, err := strconv.Atoi(args[0])
				if err != nil {
					s.println("Month must be a number between 1 and 12.")
					return nil
				}
				result, err := book.FilterByMonth(month)
				if err != nil {
					return err
				}
				s.println(presentation.FilteredPeopleTable(month, result))
				logger.Info(log.CatBirthdays, "filtered by month",
					"month", month, "matches", len(result))
				return nil
			},
		},
		Command{
			Name:    "save",
			Usage:   "save <file>",
			Summary: "save the book to an XML file",
			MinArgs: 1,
			Run: func(args []string) error {
				path := resolvePath(dataDir, args[0], ext)
				if err := book.Save(path); err != nil {
					return err
				}
				s.success("Saved " + strconv.Itoa(book.Len()) + " records to " + path)
				logger.Info(log.CatStore, "saved birthday book",
					"path", path, "count", book.Len())
				return nil
			},
		},
		Command{
			Name:    "load",
			Usage:   "load <file>",
			Summary: "load the book from an XML file",
			MinArgs: 1,
			Run: func(args []string) error {
				path := resolvePath(dataDir, args[0], ext)
				loaded, skipped, err := book.Load(path)
				if err != nil {
					return err
				}
				s.reportLoad(path, loaded, skipped)
				logger.Info(log.CatStore, "loaded birthday book",
					"path", path, "loaded", loaded, "skipped", skipped)
				return nil
			},
		},
	)
	return s
}

func (s *Shell) addPerson(book *birthday.Book, logger *log.Logger) error {
	s.println("Adding a new person (empty input re-prompts, Ctrl-D aborts).")
	lastName, err := s.promptString("Last name")
	if err != nil {
		return s.abortInput()
	}
	firstName, err := s.promptString("First name")
	if err != nil {
		return s.abortInput()
	}
	phone, err := s.promptString("Phone")
	if err != nil {
		return s.abortInput()
	}
	day, err := s.promptInt("Day (1-31)")
	if err != nil {
		return s.abortInput()
	}
	month, err := s.promptIntInRange("Month (1-12)", 1, 12)
	if err != nil {
		return s.abortInput()
	}
	year, err := s.promptInt("Year")
	if err != nil {
		return s.abortInput()
	}

	p, err := book.Add(lastName, firstName, phone, day, month, year)
	if err != nil {
		logger.ErrorErr(log.CatBirthdays, "add rejected", err)
		return err
	}
	s.success("Added " + p.FullName() + ", born " + p.BirthDate())
	logger.Info(log.CatBirthdays, "person added",
		"name", p.FullName(), "birth_date", p.BirthDate())
	return nil
}

// abortInput reports an aborted field collection without failing the loop.
func (s *Shell) abortInput() error {
	s.println("Input aborted; nothing added.")
	s.logger.Info(log.CatShell, "input collection aborted")
	return nil
}

// resolvePath joins a user-supplied filename with the data directory and
// appends the configured extension when missing.
func resolvePath(dataDir, name, ext string) string {
	path := EnsureExtension(name, ext)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dataDir, path)
	}
	return path
}
