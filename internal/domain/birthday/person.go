// Package birthday implements the birthday book: validated person records
// kept sorted by name, with month filtering and XML persistence.
package birthday

import (
	"fmt"
	"time"
)

// MinYear is the oldest accepted birth year.
const MinYear = 1900

// Person is a validated, immutable record of one person's birthday.
// Construct it with NewPerson; a Person that exists is valid.
type Person struct {
	LastName  string
	FirstName string
	Phone     string
	Day       int
	Month     int
	Year      int
}

// NewPerson validates the fields and returns the record. Checks run in a
// fixed order: year range, month range, then day against the month length.
func NewPerson(lastName, firstName, phone string, day, month, year int) (Person, error) {
	currentYear := time.Now().Year()
	if year < MinYear || year > currentYear {
		return Person{}, &InvalidDateError{
			Day:    day,
			Month:  month,
			Year:   year,
			Reason: fmt.Sprintf("year must be in range %d-%d", MinYear, currentYear),
		}
	}
	if month < 1 || month > 12 {
		return Person{}, &InvalidMonthError{Month: month}
	}
	days := daysInMonth(month, year)
	if day < 1 || day > days {
		return Person{}, &InvalidDateError{
			Day:    day,
			Month:  month,
			Year:   year,
			Reason: fmt.Sprintf("day must be in range 1-%d for month %d", days, month),
		}
	}
	return Person{
		LastName:  lastName,
		FirstName: firstName,
		Phone:     phone,
		Day:       day,
		Month:     month,
		Year:      year,
	}, nil
}

// daysInMonth returns the month length, honoring the Gregorian leap rule.
func daysInMonth(month, year int) int {
	switch month {
	case 2:
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// FullName returns "LastName FirstName".
func (p Person) FullName() string {
	return p.LastName + " " + p.FirstName
}

// BirthDate returns the birth date as DD.MM.YYYY.
func (p Person) BirthDate() string {
	return fmt.Sprintf("%02d.%02d.%d", p.Day, p.Month, p.Year)
}

// Age returns the person's age in full years as of now.
func (p Person) Age() int {
	now := time.Now()
	age := now.Year() - p.Year
	if int(now.Month()) < p.Month || (int(now.Month()) == p.Month && now.Day() < p.Day) {
		age--
	}
	return age
}

// BirthdayInMonth reports whether the birthday falls in the given month.
func (p Person) BirthdayInMonth(month int) bool {
	return p.Month == month
}
