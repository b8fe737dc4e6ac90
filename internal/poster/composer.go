package poster

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// A4 page geometry in points, drawn top-down.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	margin     = 50.0

	columns    = 4
	columnGap  = 15.0
	cardHeight = 120.0
	rowGap     = 30.0
	cardsTop   = 120.0

	// maxCards caps the grid at five full rows on one page.
	maxCards = 20

	// maxGenreList caps the genre roll-up at the bottom of the poster.
	maxGenreList = 10
)

// Display truncation limits for card text.
const (
	titleLimit  = 25
	authorLimit = 20
	genreLimit  = 15
)

const posterTitle = "My Book Library"

// card is one grid cell of the poster.
type card struct {
	Badge  string
	Title  string
	Author string
	Genre  string
	Added  string
}

// document is the fully laid-out poster content before rendering. Keeping
// it separate from the PDF drawing makes composition testable.
type document struct {
	Title        string
	Stats        string
	Cards        []card
	MoreNote     string
	GenreHeading string
	GenreLine    string
}

// Composer renders library posters. The zero value is ready to use.
type Composer struct {
	// Now is the clock used for the "Updated" stamp. Nil means time.Now.
	Now func() time.Time
}

// Compose renders the poster PDF for the given summaries. Summaries are
// assumed sorted newest first; only the first 20 become cards, the rest
// are rolled into a count note.
func (c *Composer) Compose(summaries []BookSummary) ([]byte, error) {
	return render(c.build(summaries))
}

func (c *Composer) build(summaries []BookSummary) document {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	doc := document{
		Title: posterTitle,
		Stats: fmt.Sprintf("%d Books • %d Genres • Updated %s",
			len(summaries), countGenres(summaries), now().Format("Jan 2, 2006")),
	}

	for i, s := range summaries {
		if i == maxCards {
			doc.MoreNote = fmt.Sprintf("... and %d more books in your library", len(summaries)-maxCards)
			break
		}
		doc.Cards = append(doc.Cards, buildCard(s))
	}

	if genres := genreList(summaries); len(genres) > 0 {
		doc.GenreHeading = "Genres in your library:"
		doc.GenreLine = strings.Join(genres, " • ")
	}
	return doc
}

func buildCard(s BookSummary) card {
	badge := "BOOK"
	if s.Type == BookTypePDF {
		badge = "PDF"
	}
	author := truncate(s.Author, authorLimit)
	if author != "" {
		author = "by " + author
	}
	return card{
		Badge:  badge,
		Title:  truncate(s.Title, titleLimit),
		Author: author,
		Genre:  truncate(s.Genre, genreLimit),
		Added:  "Added " + s.CreatedAt.Format("Jan 2, 06"),
	}
}

// truncate shortens s to limit characters, ellipsizing so the result
// never exceeds the limit. Counts runes so multi-byte text is never
// split mid-character.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

func countGenres(summaries []BookSummary) int {
	return len(genreSet(summaries))
}

// genreList returns up to maxGenreList distinct genres, alphabetical.
func genreList(summaries []BookSummary) []string {
	set := genreSet(summaries)
	genres := make([]string, 0, len(set))
	for g := range set {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	if len(genres) > maxGenreList {
		genres = genres[:maxGenreList]
	}
	return genres
}

func genreSet(summaries []BookSummary) map[string]bool {
	set := make(map[string]bool)
	for _, s := range summaries {
		if s.Genre != "" {
			set[s.Genre] = true
		}
	}
	return set
}

// render draws the document onto an A4 page grid.
func render(doc document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(33, 33, 33)
	pdf.Text(margin, margin+20, doc.Title)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(margin, margin+38, tr(doc.Stats))

	cardWidth := (pageWidth - 2*margin - (columns-1)*columnGap) / columns
	for i, c := range doc.Cards {
		x := margin + float64(i%columns)*(cardWidth+columnGap)
		y := cardsTop + float64(i/columns)*(cardHeight+rowGap)
		renderCard(pdf, tr, c, x, y, cardWidth)
	}

	y := cardsTop + float64((len(doc.Cards)+columns-1)/columns)*(cardHeight+rowGap)
	if len(doc.Cards) == 0 {
		y = cardsTop
	}
	if y > pageHeight-margin-40 {
		pdf.AddPage()
		y = margin + 20
	}

	if doc.MoreNote != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(margin, y, doc.MoreNote)
		y += 20
	}
	if doc.GenreHeading != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(33, 33, 33)
		pdf.Text(margin, y, doc.GenreHeading)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(margin, y+14, tr(doc.GenreLine))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render poster: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCard(pdf *fpdf.Fpdf, tr func(string) string, c card, x, y, width float64) {
	pdf.SetDrawColor(220, 220, 220)
	pdf.SetFillColor(250, 250, 250)
	pdf.Rect(x, y, width, cardHeight, "FD")

	if c.Badge == "PDF" {
		pdf.SetFillColor(219, 68, 55)
	} else {
		pdf.SetFillColor(66, 133, 244)
	}
	pdf.Rect(x+6, y+8, 30, 12, "F")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(x+9, y+18, c.Badge)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(33, 33, 33)
	pdf.Text(x+6, y+40, tr(c.Title))

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(66, 66, 66)
	pdf.Text(x+6, y+55, tr(c.Author))

	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(x+6, y+70, tr(c.Genre))

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(150, 150, 150)
	pdf.Text(x+6, y+85, c.Added)
}
