package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dbassse/kartoteka/internal/domain/library"
)

var bookHeaders = []string{"Title", "Author", "Year", "Genre", "Pages"}

func bookRows(books []library.Book) [][]string {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			truncate(b.Title, 30),
			truncate(b.Author, 25),
			strconv.Itoa(b.Year),
			truncate(b.Genre, 15),
			strconv.Itoa(b.Pages),
		})
	}
	return rows
}

// BooksTable renders the full catalog.
func BooksTable(books []library.Book) string {
	if len(books) == 0 {
		return "The library catalog is empty."
	}
	var sb strings.Builder
	sb.WriteString(render(bookHeaders, bookRows(books)))
	sb.WriteString("\nUse 'select <text>' to search by title, author or genre.")
	return sb.String()
}

// SelectedBooksTable renders the books matching a search query.
func SelectedBooksTable(query string, books []library.Book) string {
	if len(books) == 0 {
		return fmt.Sprintf("No books matching %q.", query)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Books matching %q (%d):\n", query, len(books))
	sb.WriteString(render(bookHeaders, bookRows(books)))
	return sb.String()
}
