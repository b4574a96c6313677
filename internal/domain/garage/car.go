// Package garage implements the car registry: validated vehicle records
// kept sorted by brand and model, with speed checks and XML persistence.
package garage

import "fmt"

// StandardMaxSpeed is the limit, in km/h, that the standalone speed probe
// checks against.
const StandardMaxSpeed = 200

// Speed status values returned by Car.SpeedStatus.
const (
	StatusExceeded = "EXCEEDED"
	StatusStopped  = "STOPPED"
	StatusWithin   = "WITHIN LIMIT"
)

// Car is a validated, immutable record of one vehicle. Construct it with
// NewCar; a Car that exists respects its own speed limit.
type Car struct {
	Brand        string
	Model        string
	LicensePlate string
	MaxSpeed     int
	CurrentSpeed int
}

// NewCar validates the fields and returns the record. Checks run in a fixed
// order: max speed positive, current speed non-negative, current speed
// within the maximum.
func NewCar(brand, model, licensePlate string, maxSpeed, currentSpeed int) (Car, error) {
	if maxSpeed <= 0 {
		return Car{}, &InvalidSpeedError{
			Speed:  maxSpeed,
			Reason: "maximum speed must be positive",
		}
	}
	if currentSpeed < 0 {
		return Car{}, &InvalidSpeedError{
			Speed:  currentSpeed,
			Reason: "current speed cannot be negative",
		}
	}
	if currentSpeed > maxSpeed {
		return Car{}, &SpeedLimitError{
			CurrentSpeed: currentSpeed,
			MaxSpeed:     maxSpeed,
			Car:          fmt.Sprintf("%s %s (%s)", brand, model, licensePlate),
		}
	}
	return Car{
		Brand:        brand,
		Model:        model,
		LicensePlate: licensePlate,
		MaxSpeed:     maxSpeed,
		CurrentSpeed: currentSpeed,
	}, nil
}

// FullName returns "Brand Model".
func (c Car) FullName() string {
	return c.Brand + " " + c.Model
}

// IsSpeeding reports whether the car exceeds its own maximum speed.
func (c Car) IsSpeeding() bool {
	return c.CurrentSpeed > c.MaxSpeed
}

// SpeedStatus classifies the current speed for display.
func (c Car) SpeedStatus() string {
	switch {
	case c.CurrentSpeed > c.MaxSpeed:
		return StatusExceeded
	case c.CurrentSpeed == 0:
		return StatusStopped
	default:
		return StatusWithin
	}
}
