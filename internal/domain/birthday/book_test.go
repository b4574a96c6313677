package birthday

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustAdd(t *testing.T, b *Book, lastName, firstName string, day, month, year int) Person {
	t.Helper()
	p, err := b.Add(lastName, firstName, "555-0000", day, month, year)
	require.NoError(t, err)
	return p
}

func TestBook_AddKeepsSorted(t *testing.T) {
	b := NewBook()
	mustAdd(t, b, "Sidorov", "Alexei", 1, 1, 1990)
	mustAdd(t, b, "ivanova", "Maria", 2, 2, 1991)
	mustAdd(t, b, "Ivanov", "Boris", 3, 3, 1992)
	mustAdd(t, b, "Ivanov", "anna", 4, 4, 1993)

	var names []string
	for _, p := range b.People() {
		names = append(names, p.FullName())
	}
	// Case-insensitive by last name, then first name.
	require.Equal(t, []string{
		"Ivanov anna",
		"Ivanov Boris",
		"ivanova Maria",
		"Sidorov Alexei",
	}, names)
}

func TestBook_AddFailureLeavesBookUnchanged(t *testing.T) {
	b := NewBook()
	mustAdd(t, b, "Ivanov", "Boris", 3, 3, 1992)
	before := b.People()

	_, err := b.Add("Petrov", "Petr", "555-0000", 29, 2, 2001)
	require.Error(t, err)

	require.Equal(t, before, b.People())
	require.Equal(t, 1, b.Len())
}

func TestBook_PeopleReturnsCopy(t *testing.T) {
	b := NewBook()
	mustAdd(t, b, "Ivanov", "Boris", 3, 3, 1992)

	people := b.People()
	people[0].LastName = "Changed"

	require.Equal(t, "Ivanov", b.People()[0].LastName)
}

func TestBook_FilterByMonth(t *testing.T) {
	b := NewBook()
	mustAdd(t, b, "Alpha", "A", 15, 5, 1990)
	mustAdd(t, b, "Beta", "B", 15, 5, 1992)
	mustAdd(t, b, "Gamma", "C", 3, 5, 1991)
	mustAdd(t, b, "Delta", "D", 1, 6, 1990)

	result, err := b.FilterByMonth(5)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Ordered by day ascending; ties keep book order (stable).
	require.Equal(t, 3, result[0].Day)
	require.Equal(t, "Alpha", result[1].LastName)
	require.Equal(t, "Beta", result[2].LastName)

	// The book's own order is untouched by filtering.
	require.Equal(t, "Alpha", b.People()[0].LastName)
}

func TestBook_FilterByMonth_Empty(t *testing.T) {
	b := NewBook()
	mustAdd(t, b, "Alpha", "A", 15, 5, 1990)

	result, err := b.FilterByMonth(12)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestBook_FilterByMonth_InvalidMonth(t *testing.T) {
	b := NewBook()
	for _, month := range []int{0, 13, -5} {
		_, err := b.FilterByMonth(month)
		var monthErr *InvalidMonthError
		require.ErrorAs(t, err, &monthErr)
		require.Equal(t, month, monthErr.Month)
	}
}

func personSorted(people []Person) bool {
	return slices.IsSortedFunc(people, func(a, b Person) int {
		if c := strings.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName))
	})
}

func TestBook_SortedAfterAnyInsertionOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBook()
		n := rapid.IntRange(0, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			lastName := rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(t, "lastName")
			firstName := rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(t, "firstName")
			day := rapid.IntRange(1, 28).Draw(t, "day")
			month := rapid.IntRange(1, 12).Draw(t, "month")
			year := rapid.IntRange(1900, 2020).Draw(t, "year")

			_, err := b.Add(lastName, firstName, "555-0000", day, month, year)
			if err != nil {
				t.Fatalf("valid fields rejected: %v", err)
			}
			if !personSorted(b.People()) {
				t.Fatalf("book observed unsorted after insert %d", i)
			}
		}
		if b.Len() != n {
			t.Fatalf("expected %d records, got %d", n, b.Len())
		}
	})
}
