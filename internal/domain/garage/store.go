package garage

import (
	"encoding/xml"
	"errors"
	"strconv"

	"github.com/dbassse/kartoteka/internal/storage"
)

// Wire format. Load uses pointer fields so a missing child element is
// distinguishable from an empty one.
type carOut struct {
	Brand        string `xml:"brand"`
	Model        string `xml:"model"`
	LicensePlate string `xml:"license_plate"`
	MaxSpeed     int    `xml:"max_speed"`
	CurrentSpeed int    `xml:"current_speed"`
}

type carsOut struct {
	XMLName xml.Name `xml:"cars"`
	Cars    []carOut `xml:"car"`
}

type carIn struct {
	Brand        *string `xml:"brand"`
	Model        *string `xml:"model"`
	LicensePlate *string `xml:"license_plate"`
	MaxSpeed     *string `xml:"max_speed"`
	CurrentSpeed *string `xml:"current_speed"`
}

type carsIn struct {
	XMLName xml.Name `xml:"cars"`
	Cars    []carIn  `xml:"car"`
}

var errMissingField = errors.New("missing field")

// Save writes every record, in registry order, to an XML file at path.
func (r *Registry) Save(path string) error {
	doc := carsOut{Cars: make([]carOut, 0, len(r.cars))}
	for _, c := range r.cars {
		doc.Cars = append(doc.Cars, carOut{
			Brand:        c.Brand,
			Model:        c.Model,
			LicensePlate: c.LicensePlate,
			MaxSpeed:     c.MaxSpeed,
			CurrentSpeed: c.CurrentSpeed,
		})
	}
	return storage.WriteXML(path, doc)
}

// Load replaces the registry's contents with the records parsed from path.
// Entries with missing fields, unparsable numbers or invalid speeds are
// skipped and counted; a file that is not well-formed at all aborts the
// load and leaves the registry untouched. Returns (loaded, skipped).
func (r *Registry) Load(path string) (int, int, error) {
	var doc carsIn
	if err := storage.ReadXML(path, &doc); err != nil {
		return 0, 0, err
	}

	loaded := make([]Car, 0, len(doc.Cars))
	skipped := 0
	for _, entry := range doc.Cars {
		c, err := entry.toCar()
		if err != nil {
			skipped++
			continue
		}
		loaded = append(loaded, c)
	}

	r.replace(loaded)
	return len(loaded), skipped, nil
}

func (in carIn) toCar() (Car, error) {
	if in.Brand == nil || in.Model == nil || in.LicensePlate == nil {
		return Car{}, errMissingField
	}
	maxSpeed, err := intField(in.MaxSpeed)
	if err != nil {
		return Car{}, err
	}
	currentSpeed, err := intField(in.CurrentSpeed)
	if err != nil {
		return Car{}, err
	}
	return NewCar(*in.Brand, *in.Model, *in.LicensePlate, maxSpeed, currentSpeed)
}

func intField(v *string) (int, error) {
	if v == nil {
		return 0, errMissingField
	}
	return strconv.Atoi(*v)
}
