// Package poster renders a user's library as a one-look PDF poster and
// attaches it to downloads.
package poster

import (
	"sort"
	"time"

	"github.com/bookvault/bookvault/internal/store"
)

// BookType discriminates the two catalog sources a summary can come from.
type BookType string

const (
	BookTypeRegular BookType = "regular"
	BookTypePDF     BookType = "pdf"
)

// BookSummary is the poster's view of a book: just enough to draw a
// card. The Type tag records which catalog the entry came from.
type BookSummary struct {
	Type      BookType
	Title     string
	Author    string
	Genre     string
	CreatedAt time.Time
}

// FromBook summarizes a manually cataloged book.
func FromBook(b store.Book) BookSummary {
	return BookSummary{
		Type:      BookTypeRegular,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		CreatedAt: b.CreatedAt,
	}
}

// FromPDFBook summarizes an uploaded PDF book.
func FromPDFBook(b store.PDFBook) BookSummary {
	return BookSummary{
		Type:      BookTypePDF,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		CreatedAt: b.CreatedAt,
	}
}

// Collect merges both catalogs into one list sorted newest first. The
// sort is stable so equal timestamps keep catalog order.
func Collect(books []store.Book, pdfBooks []store.PDFBook) []BookSummary {
	summaries := make([]BookSummary, 0, len(books)+len(pdfBooks))
	for _, b := range books {
		summaries = append(summaries, FromBook(b))
	}
	for _, b := range pdfBooks {
		summaries = append(summaries, FromPDFBook(b))
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries
}
