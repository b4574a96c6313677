package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dbassse/kartoteka/internal/domain/birthday"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for a month in 1..12.
func MonthName(month int) string {
	return monthNames[month-1]
}

// PeopleTable renders the full birthday book.
func PeopleTable(people []birthday.Person) string {
	if len(people) == 0 {
		return "The birthday book is empty."
	}
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{
			truncate(p.FullName(), 25),
			truncate(p.Phone, 20),
			p.BirthDate(),
		})
	}
	var sb strings.Builder
	sb.WriteString(render([]string{"Full name", "Phone", "Birth date"}, rows))
	sb.WriteString("\nUse 'filter <month>' to list birthdays in one month.")
	return sb.String()
}

// FilteredPeopleTable renders the people with a birthday in the given
// month, with an extra age column.
func FilteredPeopleTable(month int, people []birthday.Person) string {
	if len(people) == 0 {
		return fmt.Sprintf("No birthdays in %s.", MonthName(month))
	}
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{
			truncate(p.FullName(), 25),
			truncate(p.Phone, 20),
			p.BirthDate(),
			strconv.Itoa(p.Age()),
		})
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Birthdays in %s (%d):\n", MonthName(month), len(people))
	sb.WriteString(render([]string{"Full name", "Phone", "Birth date", "Age"}, rows))
	return sb.String()
}
