// Package library implements the library catalog: validated book records
// kept sorted by title, with free-text search and XML persistence.
package library

import "fmt"

// DefaultMaxYear is the default ceiling for a book's publication year.
// Unlike the birthday book's dynamic current-year bound, this is a fixed
// per-catalog policy value; it is configurable via library.max_year.
const DefaultMaxYear = 2024

// InvalidInputError reports a field value outside its allowed range.
type InvalidInputError struct {
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v -> %s", e.Value, e.Reason)
}

// Book is a validated, immutable record of one catalogued book.
// Construct it with NewBook; a Book that exists is valid.
type Book struct {
	Title  string
	Author string
	Year   int
	Genre  string
	Pages  int
}

// NewBook validates the fields against the given year ceiling and returns
// the record. Checks run in a fixed order: year range, then page count.
func NewBook(title, author string, year int, genre string, pages, maxYear int) (Book, error) {
	if year < 0 || year > maxYear {
		return Book{}, &InvalidInputError{
			Value:  year,
			Reason: fmt.Sprintf("publication year must be in range 0-%d", maxYear),
		}
	}
	if pages <= 0 {
		return Book{}, &InvalidInputError{
			Value:  pages,
			Reason: "page count must be positive",
		}
	}
	return Book{
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
		Pages:  pages,
	}, nil
}
