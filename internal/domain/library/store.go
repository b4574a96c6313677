package library

import (
	"encoding/xml"
	"errors"
	"strconv"

	"github.com/dbassse/kartoteka/internal/storage"
)

// Wire format. Load uses pointer fields so a missing child element is
// distinguishable from an empty one.
type bookOut struct {
	Title  string `xml:"title"`
	Author string `xml:"author"`
	Year   int    `xml:"year"`
	Genre  string `xml:"genre"`
	Pages  int    `xml:"pages"`
}

type libraryOut struct {
	XMLName xml.Name  `xml:"library"`
	Books   []bookOut `xml:"book"`
}

type bookIn struct {
	Title  *string `xml:"title"`
	Author *string `xml:"author"`
	Year   *string `xml:"year"`
	Genre  *string `xml:"genre"`
	Pages  *string `xml:"pages"`
}

type libraryIn struct {
	XMLName xml.Name `xml:"library"`
	Books   []bookIn `xml:"book"`
}

var errMissingField = errors.New("missing field")

// Save writes every record, in catalog order, to an XML file at path.
func (c *Catalog) Save(path string) error {
	doc := libraryOut{Books: make([]bookOut, 0, len(c.books))}
	for _, b := range c.books {
		doc.Books = append(doc.Books, bookOut{
			Title:  b.Title,
			Author: b.Author,
			Year:   b.Year,
			Genre:  b.Genre,
			Pages:  b.Pages,
		})
	}
	return storage.WriteXML(path, doc)
}

// Load replaces the catalog's contents with the records parsed from path.
// Entries with missing fields, unparsable numbers or out-of-range values
// are skipped and counted; a file that is not well-formed at all aborts the
// load and leaves the catalog untouched. Returns (loaded, skipped).
func (c *Catalog) Load(path string) (int, int, error) {
	var doc libraryIn
	if err := storage.ReadXML(path, &doc); err != nil {
		return 0, 0, err
	}

	loaded := make([]Book, 0, len(doc.Books))
	skipped := 0
	for _, entry := range doc.Books {
		b, err := entry.toBook(c.maxYear)
		if err != nil {
			skipped++
			continue
		}
		loaded = append(loaded, b)
	}

	c.replace(loaded)
	return len(loaded), skipped, nil
}

func (in bookIn) toBook(maxYear int) (Book, error) {
	if in.Title == nil || in.Author == nil || in.Genre == nil {
		return Book{}, errMissingField
	}
	year, err := intField(in.Year)
	if err != nil {
		return Book{}, err
	}
	pages, err := intField(in.Pages)
	if err != nil {
		return Book{}, err
	}
	return NewBook(*in.Title, *in.Author, year, *in.Genre, pages, maxYear)
}

func intField(v *string) (int, error) {
	if v == nil {
		return 0, errMissingField
	}
	return strconv.Atoi(*v)
}
