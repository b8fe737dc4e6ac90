package metadata

import (
	"regexp"
	"strings"
)

// authorPatterns remove website, copyright/publisher and download noise
// from author fields. Applied in order, every match removed.
var authorPatterns = []*regexp.Regexp{
	// Website and domain names.
	regexp.MustCompile(`(?i)www\.[a-z0-9.-]+\.[a-z]{2,}`),
	regexp.MustCompile(`(?i)[a-z0-9.-]+\.` + tldGroup + `\b`),

	// Copyright and legal boilerplate.
	regexp.MustCompile(`(?i)copyright\s*©?\s*\d{4}`),
	regexp.MustCompile(`©\s*\d{4}`),
	regexp.MustCompile(`(?i)\(c\)\s*\d{4}`),
	regexp.MustCompile(`(?i)all\s+rights\s+reserved`),
	regexp.MustCompile(`(?i)rights\s+reserved`),
	regexp.MustCompile(`(?i)published\s+by`),
	regexp.MustCompile(`(?i)\bpublishers?\b`),
	regexp.MustCompile(`(?i)\bpublishing\b`),
	regexp.MustCompile(`(?i)\bpublications?\b`),
	regexp.MustCompile(`(?i)\bpress\b`),
	regexp.MustCompile(`(?i)\bltd\b\.?`),
	regexp.MustCompile(`(?i)\binc\b\.?`),
	regexp.MustCompile(`(?i)\bcorp\b\.?`),
	regexp.MustCompile(`(?i)\bcompany\b`),

	// Download and file-related terms.
	regexp.MustCompile(`(?i)\bdownload\b`),
	regexp.MustCompile(`(?i)\be-?book\b`),
	regexp.MustCompile(`(?i)\bonline\b`),
	regexp.MustCompile(`(?i)\bdigital\b`),
	regexp.MustCompile(`(?i)\bversion\b`),

	// Email addresses and URLs.
	regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`),
	regexp.MustCompile(`(?i)https?://\S+`),
}

// nonAuthorPatterns strip role prefixes and suffixes after the main
// cleanup pass.
var nonAuthorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(by\s+)?the\s+`),
	regexp.MustCompile(`(?i)^(by\s+)?author\s+`),
	regexp.MustCompile(`(?i)^(by\s+)?(written|created|edited)\s+by\s+`),
	regexp.MustCompile(`(?i)^by\s+`),
	regexp.MustCompile(`(?i)\s+(editors?|authors?|writers?)$`),
	regexp.MustCompile(`(?i)\s+et\s+al\.?$`),
	regexp.MustCompile(`(?i)\s+and\s+others$`),
}

var (
	commaSpacing  = regexp.MustCompile(`\s*[,;]\s*`)
	domainLike    = regexp.MustCompile(`(?i)\.` + tldGroup + `\b`)
	leadingPunct  = regexp.MustCompile(`^[\s\-|•·,;(\[{]+`)
	trailingPunct = regexp.MustCompile(`[\s\-|•·,;)\]}]+$`)
)

// namePrefixes are capitalized normally but recognized so compound
// surnames like "McDonald" or "van Gogh" survive the word pass.
var namePrefixes = []string{"mc", "mac", "o'", "de", "la", "le", "van", "von", "del", "da", "di"}

// nameSuffixes are rendered upper case ("Jr" stays "Jr", "iii" → "III").
var nameSuffixes = map[string]bool{"jr": true, "sr": true, "ii": true, "iii": true, "iv": true}

// CleanAuthor strips copyright boilerplate, publisher names, domains and
// emails from an author field, resolves "Last, First" ordering, drops
// co-author tails, and capitalizes the result respecting name prefixes
// and suffixes. Returns "" when nothing resembling a person's name remains.
func CleanAuthor(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := raw
	for _, re := range authorPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = dashRuns.ReplaceAllString(cleaned, " ")
	cleaned = spaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = commaSpacing.ReplaceAllString(cleaned, ", ")
	cleaned = leadingPunct.ReplaceAllString(cleaned, "")
	cleaned = trailingPunct.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	for _, re := range nonAuthorPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	cleaned = resolveCommaParts(cleaned)

	if len(cleaned) < 2 || onlyDigitsPunct.MatchString(cleaned) || domainLike.MatchString(cleaned) {
		return ""
	}

	return capitalizeName(cleaned)
}

// resolveCommaParts handles comma-separated author fields. Exactly two
// parts where the second is a single short token is treated as
// "Last, First" and reordered; anything else keeps only the first part
// (the remainder is co-author or "et al." noise).
func resolveCommaParts(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}

	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	switch {
	case len(parts) == 0:
		return ""
	case len(parts) == 2 && len(strings.Fields(parts[1])) == 1 && len(parts[1]) < 20:
		return parts[1] + " " + parts[0]
	default:
		return parts[0]
	}
}

// capitalizeName title-cases a name, upper-casing generational suffixes
// and capitalizing prefix-led surnames conventionally.
func capitalizeName(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		lower := strings.ToLower(word)
		if base := strings.TrimSuffix(lower, "."); nameSuffixes[base] {
			if base == "jr" || base == "sr" {
				words[i] = capitalize(lower)
			} else {
				words[i] = strings.ToUpper(base) + lower[len(base):]
			}
			continue
		}
		words[i] = capitalizeNameWord(lower)
	}
	return strings.Join(words, " ")
}

// capitalizeNameWord capitalizes one name token, handling "o'" and "mc"
// style prefixes so "o'brien" → "O'Brien" and "mcdonald" → "McDonald".
func capitalizeNameWord(lower string) string {
	for _, prefix := range namePrefixes {
		if prefix != "mc" && prefix != "mac" && prefix != "o'" {
			// Particles like "de" or "van" stand alone; plain casing.
			continue
		}
		rest := strings.TrimPrefix(lower, prefix)
		if rest == lower || len(rest) < 3 {
			continue
		}
		return capitalize(prefix) + capitalize(rest)
	}
	return capitalize(lower)
}
