package presentation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbassse/kartoteka/internal/domain/birthday"
	"github.com/dbassse/kartoteka/internal/domain/garage"
	"github.com/dbassse/kartoteka/internal/domain/library"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "exactlyten", truncate("exactlyten", 10))
	require.Equal(t, "overlong..", truncate("overlong text here", 10))
	// Rune-aware, not byte-aware.
	require.Equal(t, "Мастер и..", truncate("Мастер и Маргарита", 10))
}

func TestMonthName(t *testing.T) {
	require.Equal(t, "January", MonthName(1))
	require.Equal(t, "December", MonthName(12))
}

func TestPeopleTable(t *testing.T) {
	require.Equal(t, "The birthday book is empty.", PeopleTable(nil))

	p, err := birthday.NewPerson("Ivanova", "Maria", "555-0001", 15, 5, 1990)
	require.NoError(t, err)

	out := PeopleTable([]birthday.Person{p})
	require.Contains(t, out, "Ivanova Maria")
	require.Contains(t, out, "555-0001")
	require.Contains(t, out, "15.05.1990")
	require.Contains(t, out, "filter <month>")
}

func TestFilteredPeopleTable(t *testing.T) {
	require.Contains(t, FilteredPeopleTable(5, nil), "No birthdays in May.")

	p, err := birthday.NewPerson("Ivanova", "Maria", "555-0001", 15, 5, 1990)
	require.NoError(t, err)

	out := FilteredPeopleTable(5, []birthday.Person{p})
	require.Contains(t, out, "Birthdays in May (1):")
	require.Contains(t, out, "Age")
}

func TestCarsTable(t *testing.T) {
	require.Equal(t, "The car registry is empty.", CarsTable(nil))

	within, err := garage.NewCar("Lada", "Vesta", "A123BC77", 180, 90)
	require.NoError(t, err)
	stopped, err := garage.NewCar("BMW", "X5", "B555MW77", 250, 0)
	require.NoError(t, err)

	out := CarsTable([]garage.Car{within, stopped})
	require.Contains(t, out, "Lada Vesta")
	require.Contains(t, out, garage.StatusWithin)
	require.Contains(t, out, garage.StatusStopped)
	require.Contains(t, out, "Total: 2 cars, 0 speeding, 2 within limit.")
}

func TestSpeedingTable_Empty(t *testing.T) {
	require.Equal(t, "No cars are exceeding their speed limit.", SpeedingTable(nil))
}

func TestBrandTable(t *testing.T) {
	require.Contains(t, BrandTable("volga", nil), `No cars with brand matching "volga".`)

	c, err := garage.NewCar("Toyota", "Camry", "T001OY77", 210, 60)
	require.NoError(t, err)
	out := BrandTable("toy", []garage.Car{c})
	require.Contains(t, out, `Cars with brand matching "toy" (1):`)
	require.Contains(t, out, "Toyota Camry")
}

func TestBooksTable(t *testing.T) {
	require.Equal(t, "The library catalog is empty.", BooksTable(nil))

	b, err := library.NewBook("Книга C", "Автор C", 2000, "Жанр C", 100, library.DefaultMaxYear)
	require.NoError(t, err)

	out := BooksTable([]library.Book{b})
	require.Contains(t, out, "Книга C")
	require.Contains(t, out, "Автор C")
	require.Contains(t, out, "select <text>")
}

func TestSelectedBooksTable(t *testing.T) {
	require.Contains(t, SelectedBooksTable("нет такого", nil), `No books matching "нет такого".`)

	b, err := library.NewBook("Книга C", "Автор C", 2000, "Жанр C", 100, library.DefaultMaxYear)
	require.NoError(t, err)
	out := SelectedBooksTable("книга c", []library.Book{b})
	require.Contains(t, out, `Books matching "книга c" (1):`)
}
