package birthday

import (
	"slices"
	"strings"
)

// Book is the birthday book: an ordered list of valid Person records.
// It is always observed sorted by last name then first name,
// case-insensitively. Not safe for concurrent use.
type Book struct {
	people []Person
}

// NewBook returns an empty birthday book.
func NewBook() *Book {
	return &Book{}
}

// Add validates the fields and inserts the resulting record, keeping the
// book sorted. On a validation error the book is left unchanged.
func (b *Book) Add(lastName, firstName, phone string, day, month, year int) (Person, error) {
	p, err := NewPerson(lastName, firstName, phone, day, month, year)
	if err != nil {
		return Person{}, err
	}
	b.people = append(b.people, p)
	b.sort()
	return p, nil
}

// People returns a copy of the records in resting order.
func (b *Book) People() []Person {
	return slices.Clone(b.people)
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.people)
}

// FilterByMonth returns everyone whose birthday falls in the given month,
// ordered by day of month ascending. The book's own order is untouched.
func (b *Book) FilterByMonth(month int) ([]Person, error) {
	if month < 1 || month > 12 {
		return nil, &InvalidMonthError{Month: month}
	}
	var result []Person
	for _, p := range b.people {
		if p.BirthdayInMonth(month) {
			result = append(result, p)
		}
	}
	slices.SortStableFunc(result, func(a, b Person) int {
		return a.Day - b.Day
	})
	return result, nil
}

// replace swaps in a fully parsed record set (used by Load) and re-sorts.
func (b *Book) replace(people []Person) {
	b.people = people
	b.sort()
}

func (b *Book) sort() {
	slices.SortStableFunc(b.people, func(a, b Person) int {
		if c := strings.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName))
	})
}
