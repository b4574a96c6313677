package garage

import "fmt"

// InvalidSpeedError reports a speed value that is out of range on its own
// (non-positive limit, negative current speed).
type InvalidSpeedError struct {
	Speed  int
	Reason string
}

func (e *InvalidSpeedError) Error() string {
	return fmt.Sprintf("%d -> %s", e.Speed, e.Reason)
}

// SpeedLimitError reports a current speed above the allowed maximum.
// Car is a human description of the offending vehicle; it is empty for the
// standalone speed probe.
type SpeedLimitError struct {
	CurrentSpeed int
	MaxSpeed     int
	Car          string
}

func (e *SpeedLimitError) Error() string {
	msg := fmt.Sprintf("speed limit of %d km/h exceeded", e.MaxSpeed)
	if e.Car != "" {
		return fmt.Sprintf("%s: %d -> %s", e.Car, e.CurrentSpeed, msg)
	}
	return fmt.Sprintf("%d -> %s", e.CurrentSpeed, msg)
}
