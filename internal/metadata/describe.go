package metadata

import (
	"fmt"
	"strings"
)

const (
	// descMaxLen is the hard ceiling on synthesized descriptions.
	descMaxLen = 1200

	// descMinSentenceCut is the shortest acceptable sentence-boundary
	// truncation. Below this the text is hard-cut and ellipsized instead.
	descMinSentenceCut = 800

	// maxDescKeywords caps the keyword sentence.
	maxDescKeywords = 5
)

// genreSentences adds one template sentence per genre. Genres without an
// entry get genericGenreSentence.
var genreSentences = map[string]string{
	"Fiction":         "This work of fiction invites readers into a fully imagined world.",
	"Non-Fiction":     "This non-fiction work examines its subject with clarity and depth.",
	"Biography":       "This biography traces the shape of a remarkable life.",
	"History":         "This history brings a past era into sharp focus.",
	"Science Fiction": "This science fiction tale explores futures built on bold ideas.",
	"Fantasy":         "This fantasy conjures a world of magic and adventure.",
	"Mystery":         "This mystery keeps its secrets until the final pages.",
	"Romance":         "This romance follows hearts finding their way to each other.",
	"Thriller":        "This thriller moves at a relentless pace.",
	"Self-Help":       "This self-help guide offers practical steps toward real change.",
	"Business":        "This business book distills lessons from the world of commerce.",
	"Technology":      "This technology title maps the tools shaping modern life.",
	"Science":         "This science book makes complex ideas approachable.",
	"Health":          "This health guide supports informed choices about wellbeing.",
	"Education":       "This educational work is built for structured learning.",
	"Philosophy":      "This philosophical work wrestles with enduring questions.",
	"Poetry":          "This poetry collection rewards slow, attentive reading.",
	"Travel":          "This travel book carries readers to places worth knowing.",
}

const (
	genericGenreSentence = "An engaging read for anyone curious about its subject."
	genericOpener        = "This book offers valuable insights and information for its readers."
)

// SynthesizeDescription composes a readable description from cleaned
// metadata: an opening sentence from title and author, a genre template
// sentence, the PDF's subject line when it adds something new, a capped
// keyword list, and a closing author credit. Output never exceeds 1200
// characters and is truncated at a sentence boundary when one falls
// late enough in the text.
func SynthesizeDescription(c Cleaned, subject string) string {
	hasTitle := c.Title != "" && c.Title != UnknownTitle
	hasAuthor := c.Author != "" && c.Author != UnknownAuthor

	var opening string
	switch {
	case hasTitle && hasAuthor:
		opening = fmt.Sprintf("%q by %s.", c.Title, c.Author)
	case hasTitle:
		opening = fmt.Sprintf("%q.", c.Title)
	default:
		opening = genericOpener
	}
	parts := []string{opening}

	if s, ok := genreSentences[c.Genre]; ok {
		parts = append(parts, s)
	} else {
		parts = append(parts, genericGenreSentence)
	}

	if s := subjectSentence(subject, opening); s != "" {
		parts = append(parts, s)
	}

	if s := keywordSentence(c.Keywords); s != "" {
		parts = append(parts, s)
	}

	who := "the author"
	if hasAuthor {
		who = c.Author
	}
	parts = append(parts, fmt.Sprintf("Readers will value the perspective %s brings to the material.", who))

	return truncateDescription(strings.Join(parts, " "))
}

// subjectSentence returns the subject line as a sentence, dropped when
// trivial or already substantially present in the opening.
func subjectSentence(subject, opening string) string {
	s := strings.TrimSpace(subject)
	if len(s) <= 10 {
		return ""
	}
	if strings.Contains(strings.ToLower(opening), strings.ToLower(s)) {
		return ""
	}
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}

// keywordSentence builds "Topics include a, b and c." from the raw
// comma-separated keyword string. Tokens that are too short or too long
// to be real topics are dropped; at most maxDescKeywords survive.
func keywordSentence(raw string) string {
	var kept []string
	for _, k := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
		k = strings.TrimSpace(k)
		if len(k) > 2 && len(k) < 20 {
			kept = append(kept, k)
		}
		if len(kept) == maxDescKeywords {
			break
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return "Topics include " + kept[0] + "."
	default:
		return "Topics include " + strings.Join(kept[:len(kept)-1], ", ") + " and " + kept[len(kept)-1] + "."
	}
}

// truncateDescription enforces the length ceiling. When the text is too
// long, it is cut at the last sentence boundary no earlier than
// descMinSentenceCut; with no boundary that late, a hard cut plus
// ellipsis is used.
func truncateDescription(s string) string {
	if len(s) <= descMaxLen {
		return s
	}

	cut := s[:descMaxLen]
	if idx := strings.LastIndexAny(cut, ".!?"); idx+1 >= descMinSentenceCut {
		return strings.TrimSpace(cut[:idx+1])
	}
	return strings.TrimSpace(s[:descMaxLen-3]) + "..."
}
