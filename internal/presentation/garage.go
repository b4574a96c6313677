package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dbassse/kartoteka/internal/domain/garage"
)

func statusCell(c garage.Car) string {
	status := c.SpeedStatus()
	switch status {
	case garage.StatusExceeded:
		return exceededStyle.Render(status)
	case garage.StatusStopped:
		return stoppedStyle.Render(status)
	default:
		return withinStyle.Render(status)
	}
}

func carRows(cars []garage.Car) [][]string {
	rows := make([][]string, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, []string{
			truncate(c.FullName(), 20),
			truncate(c.LicensePlate, 12),
			strconv.Itoa(c.MaxSpeed),
			strconv.Itoa(c.CurrentSpeed),
			statusCell(c),
		})
	}
	return rows
}

var carHeaders = []string{"Brand Model", "Plate", "Max km/h", "Cur km/h", "Status"}

// CarsTable renders the full registry with a statistics footer.
func CarsTable(cars []garage.Car) string {
	if len(cars) == 0 {
		return "The car registry is empty."
	}
	speeding := 0
	for _, c := range cars {
		if c.IsSpeeding() {
			speeding++
		}
	}
	var sb strings.Builder
	sb.WriteString(render(carHeaders, carRows(cars)))
	fmt.Fprintf(&sb, "\nTotal: %d cars, %d speeding, %d within limit.",
		len(cars), speeding, len(cars)-speeding)
	return sb.String()
}

// SpeedingTable renders the cars exceeding their own limit, fastest first.
func SpeedingTable(cars []garage.Car) string {
	if len(cars) == 0 {
		return "No cars are exceeding their speed limit."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Speeding cars (%d):\n", len(cars))
	sb.WriteString(render(carHeaders, carRows(cars)))
	return sb.String()
}

// BrandTable renders the cars matching a brand query.
func BrandTable(query string, cars []garage.Car) string {
	if len(cars) == 0 {
		return fmt.Sprintf("No cars with brand matching %q.", query)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cars with brand matching %q (%d):\n", query, len(cars))
	sb.WriteString(render(carHeaders, carRows(cars)))
	return sb.String()
}
