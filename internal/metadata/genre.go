package metadata

import (
	"regexp"
	"strings"
)

// GenreUnknown is returned only when there is no text to classify.
const GenreUnknown = "Unknown"

// genreDefault is the catch-all label when keywords and the coarse
// fallback both fail to match.
const genreDefault = "Non-Fiction"

// genreEntry pairs a genre label with its keyword list. The table is a
// slice, not a map: scoring ties break in declaration order, and that
// order is part of the classifier's contract.
type genreEntry struct {
	Label    string
	Keywords []string
}

// genreTable is the fixed genre vocabulary. Keywords are matched as
// substrings of the lower-cased input; keywords longer than five
// characters score double.
var genreTable = []genreEntry{
	{"Fiction", []string{"novel", "story", "fiction", "tale", "narrative", "saga", "anthology"}},
	{"Non-Fiction", []string{"guide", "manual", "handbook", "reference", "how to", "tutorial", "essays"}},
	{"Biography", []string{"biography", "memoir", "autobiography", "life of", "diaries", "letters of"}},
	{"History", []string{"history", "historical", "war", "ancient", "medieval", "empire", "revolution", "civilization"}},
	{"Science Fiction", []string{"sci-fi", "science fiction", "space", "future", "alien", "galaxy", "android", "dystopia"}},
	{"Fantasy", []string{"fantasy", "magic", "wizard", "dragon", "kingdom", "quest", "sorcery", "mythical"}},
	{"Mystery", []string{"mystery", "detective", "crime", "murder", "investigation", "clue", "whodunit", "forensic"}},
	{"Romance", []string{"romance", "love", "relationship", "heart", "passion", "wedding", "courtship"}},
	{"Thriller", []string{"thriller", "suspense", "conspiracy", "espionage", "assassin", "hostage"}},
	{"Self-Help", []string{"self-help", "improvement", "success", "motivation", "habits", "mindset", "personal development", "productivity"}},
	{"Business", []string{"business", "management", "leadership", "entrepreneur", "marketing", "finance", "startup", "strategy", "economics"}},
	{"Technology", []string{"technology", "programming", "computer", "software", "digital", "coding", "algorithm", "internet", "engineering"}},
	{"Science", []string{"science", "physics", "chemistry", "biology", "mathematics", "astronomy", "evolution", "quantum"}},
	{"Health", []string{"health", "medical", "wellness", "fitness", "nutrition", "diet", "medicine", "yoga"}},
	{"Education", []string{"education", "learning", "teaching", "academic", "study", "classroom", "pedagogy"}},
	{"Philosophy", []string{"philosophy", "philosophical", "ethics", "wisdom", "thought", "metaphysics", "stoic"}},
	{"Poetry", []string{"poetry", "poems", "verse", "rhyme", "sonnet", "haiku"}},
	{"Travel", []string{"travel", "journey", "adventure", "exploration", "voyage", "wanderlust"}},
}

// Coarse second-chance patterns, checked in order when no keyword scores.
var genreFallbacks = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)guide|manual|tutorial|how\s*to`), "Non-Fiction"},
	{regexp.MustCompile(`(?i)story|novel|character|plot`), "Fiction"},
	{regexp.MustCompile(`(?i)poem|verse`), "Poetry"},
	{regexp.MustCompile(`(?i)life\s+of|memoir`), "Biography"},
}

// GenreLabels returns the genre vocabulary in declaration order.
func GenreLabels() []string {
	labels := make([]string, len(genreTable))
	for i, e := range genreTable {
		labels[i] = e.Label
	}
	return labels
}

// InferGenre scores the fixed genre vocabulary against text and returns
// the best label. Ties break toward the earlier table entry. When no
// keyword matches, a coarse regex pass runs; when that fails too, the
// result is "Non-Fiction". Empty input yields "Unknown".
func InferGenre(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return GenreUnknown
	}

	best := ""
	bestScore := 0
	for _, entry := range genreTable {
		score := 0
		for _, kw := range entry.Keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if len(kw) > 5 {
				score += 2
			} else {
				score++
			}
		}
		if score > bestScore {
			best = entry.Label
			bestScore = score
		}
	}
	if best != "" {
		return best
	}

	for _, fb := range genreFallbacks {
		if fb.re.MatchString(lower) {
			return fb.label
		}
	}
	return genreDefault
}
