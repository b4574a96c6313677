package birthday

import (
	"encoding/xml"
	"errors"
	"strconv"

	"github.com/dbassse/kartoteka/internal/storage"
)

// Wire format. Load uses pointer fields so a missing child element is
// distinguishable from an empty one.
type personOut struct {
	LastName  string `xml:"last_name"`
	FirstName string `xml:"first_name"`
	Phone     string `xml:"phone"`
	Day       int    `xml:"day"`
	Month     int    `xml:"month"`
	Year      int    `xml:"year"`
}

type birthdaysOut struct {
	XMLName xml.Name    `xml:"birthdays"`
	People  []personOut `xml:"person"`
}

type personIn struct {
	LastName  *string `xml:"last_name"`
	FirstName *string `xml:"first_name"`
	Phone     *string `xml:"phone"`
	Day       *string `xml:"day"`
	Month     *string `xml:"month"`
	Year      *string `xml:"year"`
}

type birthdaysIn struct {
	XMLName xml.Name   `xml:"birthdays"`
	People  []personIn `xml:"person"`
}

var errMissingField = errors.New("missing field")

// Save writes every record, in book order, to an XML file at path.
func (b *Book) Save(path string) error {
	doc := birthdaysOut{People: make([]personOut, 0, len(b.people))}
	for _, p := range b.people {
		doc.People = append(doc.People, personOut{
			LastName:  p.LastName,
			FirstName: p.FirstName,
			Phone:     p.Phone,
			Day:       p.Day,
			Month:     p.Month,
			Year:      p.Year,
		})
	}
	return storage.WriteXML(path, doc)
}

// Load replaces the book's contents with the records parsed from path.
// Entries with missing fields, unparsable numbers or invalid dates are
// skipped and counted; a file that is not well-formed at all aborts the
// load and leaves the book untouched. Returns (loaded, skipped).
func (b *Book) Load(path string) (int, int, error) {
	var doc birthdaysIn
	if err := storage.ReadXML(path, &doc); err != nil {
		return 0, 0, err
	}

	loaded := make([]Person, 0, len(doc.People))
	skipped := 0
	for _, entry := range doc.People {
		p, err := entry.toPerson()
		if err != nil {
			skipped++
			continue
		}
		loaded = append(loaded, p)
	}

	b.replace(loaded)
	return len(loaded), skipped, nil
}

func (in personIn) toPerson() (Person, error) {
	if in.LastName == nil || in.FirstName == nil || in.Phone == nil {
		return Person{}, errMissingField
	}
	day, err := intField(in.Day)
	if err != nil {
		return Person{}, err
	}
	month, err := intField(in.Month)
	if err != nil {
		return Person{}, err
	}
	year, err := intField(in.Year)
	if err != nil {
		return Person{}, err
	}
	return NewPerson(*in.LastName, *in.FirstName, *in.Phone, day, month, year)
}

func intField(v *string) (int, error) {
	if v == nil {
		return 0, errMissingField
	}
	return strconv.Atoi(*v)
}
