package garage

import (
	"slices"
	"strings"
)

// Registry is the car registry: an ordered list of valid Car records, always
// observed sorted by brand then model. Not safe for concurrent use.
type Registry struct {
	cars []Car
}

// NewRegistry returns an empty car registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add validates the fields and inserts the resulting record, keeping the
// registry sorted. On a validation error the registry is left unchanged.
func (r *Registry) Add(brand, model, licensePlate string, maxSpeed, currentSpeed int) (Car, error) {
	c, err := NewCar(brand, model, licensePlate, maxSpeed, currentSpeed)
	if err != nil {
		return Car{}, err
	}
	r.cars = append(r.cars, c)
	r.sort()
	return c, nil
}

// Cars returns a copy of the records in resting order.
func (r *Registry) Cars() []Car {
	return slices.Clone(r.cars)
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.cars)
}

// Speeding returns every car exceeding its own maximum speed, fastest
// first. Under the constructor invariant no such car can be stored, so the
// result is empty unless that invariant is ever relaxed; the selector is
// the single place the speeding rule lives.
func (r *Registry) Speeding() []Car {
	var result []Car
	for _, c := range r.cars {
		if c.IsSpeeding() {
			result = append(result, c)
		}
	}
	slices.SortStableFunc(result, func(a, b Car) int {
		return b.CurrentSpeed - a.CurrentSpeed
	})
	return result
}

// FindByBrand returns every car whose brand contains the query,
// case-insensitively.
func (r *Registry) FindByBrand(query string) []Car {
	q := strings.ToLower(strings.TrimSpace(query))
	var result []Car
	for _, c := range r.cars {
		if strings.Contains(strings.ToLower(c.Brand), q) {
			result = append(result, c)
		}
	}
	return result
}

// CheckSpeed probes a bare speed value against the standard limit.
// Returns nil when the speed is within StandardMaxSpeed.
func CheckSpeed(speed int) error {
	if speed > StandardMaxSpeed {
		return &SpeedLimitError{CurrentSpeed: speed, MaxSpeed: StandardMaxSpeed}
	}
	return nil
}

// replace swaps in a fully parsed record set (used by Load) and re-sorts.
func (r *Registry) replace(cars []Car) {
	r.cars = cars
	r.sort()
}

func (r *Registry) sort() {
	slices.SortStableFunc(r.cars, func(a, b Car) int {
		if c := strings.Compare(a.Brand, b.Brand); c != 0 {
			return c
		}
		return strings.Compare(a.Model, b.Model)
	})
}
