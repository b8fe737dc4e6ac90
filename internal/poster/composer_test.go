package poster

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bookvault/bookvault/internal/store"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func makeSummaries(n int) []BookSummary {
	summaries := make([]BookSummary, n)
	for i := range summaries {
		summaries[i] = BookSummary{
			Type:      BookTypePDF,
			Title:     fmt.Sprintf("Book %d", i),
			Author:    fmt.Sprintf("Author %d", i),
			Genre:     "Fiction",
			CreatedAt: fixedNow().Add(-time.Duration(i) * time.Hour),
		}
	}
	return summaries
}

func TestComposerBuild(t *testing.T) {
	c := &Composer{Now: fixedNow}

	t.Run("empty library", func(t *testing.T) {
		doc := c.build(nil)
		if doc.Stats != "0 Books • 0 Genres • Updated Mar 15, 2024" {
			t.Errorf("stats = %q", doc.Stats)
		}
		if len(doc.Cards) != 0 || doc.MoreNote != "" || doc.GenreHeading != "" {
			t.Errorf("empty library produced content: %+v", doc)
		}
	})

	t.Run("stats line", func(t *testing.T) {
		summaries := []BookSummary{
			{Type: BookTypeRegular, Title: "A", Genre: "Fiction", CreatedAt: fixedNow()},
			{Type: BookTypePDF, Title: "B", Genre: "History", CreatedAt: fixedNow()},
			{Type: BookTypePDF, Title: "C", Genre: "Fiction", CreatedAt: fixedNow()},
		}
		doc := c.build(summaries)
		if doc.Stats != "3 Books • 2 Genres • Updated Mar 15, 2024" {
			t.Errorf("stats = %q", doc.Stats)
		}
	})

	t.Run("caps cards at twenty with more note", func(t *testing.T) {
		doc := c.build(makeSummaries(25))
		if len(doc.Cards) != 20 {
			t.Fatalf("got %d cards, want 20", len(doc.Cards))
		}
		if doc.MoreNote != "... and 5 more books in your library" {
			t.Errorf("more note = %q", doc.MoreNote)
		}
	})

	t.Run("exactly twenty books has no more note", func(t *testing.T) {
		doc := c.build(makeSummaries(20))
		if len(doc.Cards) != 20 || doc.MoreNote != "" {
			t.Errorf("cards = %d, more note = %q", len(doc.Cards), doc.MoreNote)
		}
	})

	t.Run("genre section", func(t *testing.T) {
		summaries := []BookSummary{
			{Title: "A", Genre: "History", CreatedAt: fixedNow()},
			{Title: "B", Genre: "Fiction", CreatedAt: fixedNow()},
		}
		doc := c.build(summaries)
		if doc.GenreHeading != "Genres in your library:" {
			t.Errorf("heading = %q", doc.GenreHeading)
		}
		if doc.GenreLine != "Fiction • History" {
			t.Errorf("genre line = %q", doc.GenreLine)
		}
	})

	t.Run("genre list capped at ten", func(t *testing.T) {
		var summaries []BookSummary
		for i := 0; i < 15; i++ {
			summaries = append(summaries, BookSummary{
				Title: "B", Genre: fmt.Sprintf("Genre %02d", i), CreatedAt: fixedNow(),
			})
		}
		doc := c.build(summaries)
		if got := strings.Count(doc.GenreLine, " • ") + 1; got != 10 {
			t.Errorf("genre line has %d genres, want 10: %q", got, doc.GenreLine)
		}
	})
}

func TestBuildCard(t *testing.T) {
	t.Run("badges", func(t *testing.T) {
		if got := buildCard(BookSummary{Type: BookTypePDF}).Badge; got != "PDF" {
			t.Errorf("pdf badge = %q", got)
		}
		if got := buildCard(BookSummary{Type: BookTypeRegular}).Badge; got != "BOOK" {
			t.Errorf("regular badge = %q", got)
		}
	})

	t.Run("long fields truncated", func(t *testing.T) {
		c := buildCard(BookSummary{
			Title:  strings.Repeat("t", 40),
			Author: strings.Repeat("a", 40),
			Genre:  strings.Repeat("g", 40),
		})
		if len(c.Title) != titleLimit || !strings.HasSuffix(c.Title, "...") {
			t.Errorf("title = %q (len %d)", c.Title, len(c.Title))
		}
		if want := "by " + strings.Repeat("a", authorLimit-3) + "..."; c.Author != want {
			t.Errorf("author = %q, want %q", c.Author, want)
		}
		if len(c.Genre) != genreLimit || !strings.HasSuffix(c.Genre, "...") {
			t.Errorf("genre = %q (len %d)", c.Genre, len(c.Genre))
		}
	})

	t.Run("short fields untouched", func(t *testing.T) {
		c := buildCard(BookSummary{
			Title:  "Dune",
			Author: "Frank Herbert",
			Genre:  "Fiction",
			CreatedAt: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		})
		if c.Title != "Dune" || c.Author != "by Frank Herbert" || c.Genre != "Fiction" {
			t.Errorf("card = %+v", c)
		}
		if c.Added != "Added Jan 2, 24" {
			t.Errorf("added = %q", c.Added)
		}
	})

	t.Run("empty author has no by prefix", func(t *testing.T) {
		if got := buildCard(BookSummary{Title: "T"}).Author; got != "" {
			t.Errorf("author = %q, want empty", got)
		}
	})

	t.Run("multi-byte title truncates on rune boundaries", func(t *testing.T) {
		c := buildCard(BookSummary{Title: strings.Repeat("é", 40)})
		if !utf8.ValidString(c.Title) {
			t.Fatalf("title is not valid UTF-8: %q", c.Title)
		}
		if want := strings.Repeat("é", titleLimit-3) + "..."; c.Title != want {
			t.Errorf("title = %q, want %q", c.Title, want)
		}
	})
}

func TestComposeProducesPDF(t *testing.T) {
	c := &Composer{Now: fixedNow}
	for _, n := range []int{0, 3, 25} {
		out, err := c.Compose(makeSummaries(n))
		if err != nil {
			t.Fatalf("Compose(%d books): %v", n, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Errorf("Compose(%d books) did not produce a PDF header", n)
		}
	}
}

func TestCollect(t *testing.T) {
	now := fixedNow()
	books := []store.Book{
		{Title: "Old Regular", CreatedAt: now.Add(-2 * time.Hour)},
	}
	pdfBooks := []store.PDFBook{
		{Title: "New PDF", CreatedAt: now},
		{Title: "Mid PDF", CreatedAt: now.Add(-time.Hour)},
	}

	got := Collect(books, pdfBooks)
	if len(got) != 3 {
		t.Fatalf("got %d summaries, want 3", len(got))
	}
	wantOrder := []string{"New PDF", "Mid PDF", "Old Regular"}
	for i, want := range wantOrder {
		if got[i].Title != want {
			t.Errorf("summary %d = %q, want %q", i, got[i].Title, want)
		}
	}
	if got[0].Type != BookTypePDF || got[2].Type != BookTypeRegular {
		t.Errorf("types = %q, %q", got[0].Type, got[2].Type)
	}
}
