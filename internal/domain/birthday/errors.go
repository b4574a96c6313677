package birthday

import "fmt"

// InvalidMonthError reports a month outside 1..12.
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("%d -> invalid month number", e.Month)
}

// InvalidDateError reports a day/month/year combination that is not a real
// date, or a year outside the accepted range.
type InvalidDateError struct {
	Day    int
	Month  int
	Year   int
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%02d.%02d.%d -> %s", e.Day, e.Month, e.Year, e.Reason)
}
