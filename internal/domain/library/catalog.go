package library

import (
	"slices"
	"strings"
)

// Catalog is the library catalog: an ordered list of valid Book records,
// always observed sorted by title, case-insensitively. Not safe for
// concurrent use.
type Catalog struct {
	books   []Book
	maxYear int
}

// NewCatalog returns an empty catalog enforcing the given publication-year
// ceiling. A non-positive maxYear falls back to DefaultMaxYear.
func NewCatalog(maxYear int) *Catalog {
	if maxYear <= 0 {
		maxYear = DefaultMaxYear
	}
	return &Catalog{maxYear: maxYear}
}

// MaxYear returns the catalog's publication-year ceiling.
func (c *Catalog) MaxYear() int {
	return c.maxYear
}

// Add validates the fields and inserts the resulting record, keeping the
// catalog sorted. On a validation error the catalog is left unchanged.
func (c *Catalog) Add(title, author string, year int, genre string, pages int) (Book, error) {
	b, err := NewBook(title, author, year, genre, pages, c.maxYear)
	if err != nil {
		return Book{}, err
	}
	c.books = append(c.books, b)
	c.sort()
	return b, nil
}

// Books returns a copy of the records in resting order.
func (c *Catalog) Books() []Book {
	return slices.Clone(c.books)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Search returns every book whose title, author or genre contains the
// query, case-insensitively.
func (c *Catalog) Search(query string) []Book {
	q := strings.ToLower(strings.TrimSpace(query))
	var result []Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Genre), q) {
			result = append(result, b)
		}
	}
	return result
}

// replace swaps in a fully parsed record set (used by Load) and re-sorts.
func (c *Catalog) replace(books []Book) {
	c.books = books
	c.sort()
}

func (c *Catalog) sort() {
	slices.SortStableFunc(c.books, func(a, b Book) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})
}
