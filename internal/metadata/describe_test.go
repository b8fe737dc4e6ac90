package metadata

import (
	"strings"
	"testing"
)

func TestSynthesizeDescription(t *testing.T) {
	t.Run("full metadata", func(t *testing.T) {
		c := Cleaned{
			Title:    "Dune",
			Author:   "Frank Herbert",
			Genre:    "Science Fiction",
			Keywords: "desert, spice, politics",
		}
		got := SynthesizeDescription(c, "")

		if !strings.HasPrefix(got, `"Dune" by Frank Herbert.`) {
			t.Errorf("opening wrong:\n%s", got)
		}
		for _, want := range []string{
			"This science fiction tale explores futures built on bold ideas.",
			"Topics include desert, spice and politics.",
			"Readers will value the perspective Frank Herbert brings to the material.",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("description missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("subject follows the opening", func(t *testing.T) {
		c := Cleaned{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction"}
		got := SynthesizeDescription(c, "An epic of political intrigue on a desert planet")

		if !strings.HasPrefix(got, `"Dune" by Frank Herbert.`) {
			t.Errorf("opening wrong:\n%s", got)
		}
		if !strings.Contains(got, "An epic of political intrigue on a desert planet.") {
			t.Errorf("subject missing:\n%s", got)
		}
	})

	t.Run("subject repeated in opening is dropped", func(t *testing.T) {
		c := Cleaned{Title: "Political Intrigue", Author: "A. Writer"}
		got := SynthesizeDescription(c, "Political Intrigue")
		if strings.Count(got, "Political Intrigue") != 1 {
			t.Errorf("subject duplicated:\n%s", got)
		}
	})

	t.Run("trivial subject is dropped", func(t *testing.T) {
		c := Cleaned{Title: "Notes"}
		got := SynthesizeDescription(c, "misc")
		if strings.Contains(got, "misc") {
			t.Errorf("trivial subject kept:\n%s", got)
		}
	})

	t.Run("unknown title and author get generic opener and credit", func(t *testing.T) {
		c := Cleaned{Title: UnknownTitle, Author: UnknownAuthor}
		got := SynthesizeDescription(c, "")
		if !strings.HasPrefix(got, genericOpener) {
			t.Errorf("opening wrong:\n%s", got)
		}
		if !strings.Contains(got, "the perspective the author brings") {
			t.Errorf("generic credit missing:\n%s", got)
		}
	})

	t.Run("unmapped genre gets generic sentence", func(t *testing.T) {
		c := Cleaned{Title: "Notes", Genre: GenreUnknown}
		got := SynthesizeDescription(c, "")
		if !strings.Contains(got, genericGenreSentence) {
			t.Errorf("expected generic genre sentence:\n%s", got)
		}
	})

	t.Run("ends with terminal punctuation", func(t *testing.T) {
		c := Cleaned{Title: "Notes", Genre: "Fiction"}
		got := SynthesizeDescription(c, "")
		if !strings.HasSuffix(got, ".") {
			t.Errorf("missing terminal punctuation: %q", got)
		}
	})
}

func TestKeywordSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single", "sailing", "Topics include sailing."},
		{"two joined with and", "sailing, knots", "Topics include sailing and knots."},
		{
			"capped at five",
			"one1, two2, three3, four4, five5, six6, seven7",
			"Topics include one1, two2, three3, four4 and five5.",
		},
		{"short tokens dropped", "ab, sailing, x", "Topics include sailing."},
		{
			"overlong tokens dropped",
			"a very long keyword phrase that rambles, knots",
			"Topics include knots.",
		},
		{"semicolon separated", "sailing; knots", "Topics include sailing and knots."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keywordSentence(tt.in); got != tt.want {
				t.Errorf("keywordSentence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		s := "A short description."
		if got := truncateDescription(s); got != s {
			t.Errorf("got %q, want unchanged", got)
		}
	})

	t.Run("exactly at limit unchanged", func(t *testing.T) {
		s := strings.Repeat("a", descMaxLen)
		if got := truncateDescription(s); got != s {
			t.Errorf("len = %d, want %d unchanged", len(got), descMaxLen)
		}
	})

	t.Run("cuts at late sentence boundary", func(t *testing.T) {
		sentence := strings.Repeat("w", 99) + "."
		s := strings.Repeat(sentence, 13) // 1300 chars, boundaries every 100
		got := truncateDescription(s)
		if len(got) != descMaxLen {
			t.Errorf("len = %d, want %d", len(got), descMaxLen)
		}
		if !strings.HasSuffix(got, ".") {
			t.Errorf("expected sentence-boundary cut, got suffix %q", got[len(got)-5:])
		}
	})

	t.Run("hard cut when no late boundary", func(t *testing.T) {
		s := "Intro. " + strings.Repeat("w", 1400)
		got := truncateDescription(s)
		if !strings.HasSuffix(got, "...") {
			t.Errorf("expected ellipsis, got suffix %q", got[len(got)-5:])
		}
		if len(got) > descMaxLen {
			t.Errorf("len = %d, exceeds %d", len(got), descMaxLen)
		}
	})

	t.Run("never exceeds the ceiling", func(t *testing.T) {
		for _, s := range []string{
			strings.Repeat("word. ", 400),
			strings.Repeat("x", 5000),
			strings.Repeat("sentence one. ", 200),
		} {
			if got := truncateDescription(s); len(got) > descMaxLen {
				t.Errorf("len = %d, exceeds %d", len(got), descMaxLen)
			}
		}
	})
}
