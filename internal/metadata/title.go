package metadata

import (
	"regexp"
	"strings"
)

// PlatformDenylist names ebook download and sharing sites that routinely
// stamp themselves into PDF title fields. Matched case-insensitively as
// substrings; cleaned titles never contain any of these.
var PlatformDenylist = []string{
	"libgen",
	"library genesis",
	"z-library",
	"zlibrary",
	"z-lib",
	"pdfdrive",
	"pdf drive",
	"bookzz",
	"bookfi",
	"ebookee",
	"freebookspot",
	"manybooks",
	"gutenberg.org",
	"ebook3000",
	"epubud",
}

// tldGroup matches the TLDs seen in scraped titles. Longer alternatives
// come first so ".com" wins over ".co".
const tldGroup = `(com|org|net|edu|gov|uk|de|fr|in|ru|io|co)`

// titlePatterns are applied in order; every match is removed outright.
// Order matters: site-suffix constructs must go before the generic domain
// patterns so "- SiteName.com" is removed as a unit.
var titlePatterns = []*regexp.Regexp{
	// Trailing "- SiteName.tld ..." and leading "SiteName.tld -" constructs.
	regexp.MustCompile(`(?i)\s*-\s*[^-]*\.` + tldGroup + `.*$`),
	regexp.MustCompile(`(?i)^\s*[a-z0-9.-]+\.` + tldGroup + `\s*-\s*`),
	// Everything after the last pipe is site branding.
	regexp.MustCompile(`\s*\|[^|]*$`),

	// Website and domain names.
	regexp.MustCompile(`(?i)www\.[a-z0-9.-]+\.[a-z]{2,}`),
	regexp.MustCompile(`(?i)[a-z0-9.-]+\.` + tldGroup + `\b`),

	// Download-action phrases.
	regexp.MustCompile(`(?i)free\s*download`),
	regexp.MustCompile(`(?i)(pdf|ebook|book)\s*download`),
	regexp.MustCompile(`(?i)download`),
	regexp.MustCompile(`(?i)get\s*free`),
	regexp.MustCompile(`(?i)read\s*online`),
	regexp.MustCompile(`(?i)online\s*reading`),
	regexp.MustCompile(`(?i)free\s*(pdf|ebook)`),
	regexp.MustCompile(`(?i)torrent`),
	regexp.MustCompile(`(?i)magnet`),

	// File-format markers.
	regexp.MustCompile(`(?i)\.(pdf|epub|mobi|azw3?|txt)\s*$`),
	regexp.MustCompile(`(?i)[\[(](pdf|epub|mobi|azw3?)[\])]`),

	// Generic prefixes and suffixes.
	regexp.MustCompile(`(?i)^(the\s+)?complete\s+`),
	regexp.MustCompile(`(?i)^(the\s+)?official\s+`),
	regexp.MustCompile(`(?i)\s*-\s*(free|pdf|ebook)\s*$`),

	// Edition, version and quality markers.
	regexp.MustCompile(`(?i)\bv?\d+(\.\d+)+\b`),
	regexp.MustCompile(`(?i)\b\d+(st|nd|rd|th)\s+(edition|ed)\b\.?`),
	regexp.MustCompile(`(?i)\b(hq|ocr|scanned|retail)\b`),
}

var (
	dashRuns        = regexp.MustCompile(`[-_]+`)
	spaceRuns       = regexp.MustCompile(`\s+`)
	leadingJunk     = regexp.MustCompile(`^[\s\-|•·,;(\[{'"` + "`" + `]+`)
	trailingJunk    = regexp.MustCompile(`[\s\-|•·,;)\]}'"` + "`" + `]+$`)
	standaloneYear  = regexp.MustCompile(`^\s*(1[0-9]{3}|20[0-9]{2})\s*$|\s+\b(1[0-9]{3}|20[0-9]{2})\b\s*$`)
	onlyDigitsPunct = regexp.MustCompile(`^[0-9\s\-_.,!@#$%^&*()]+$`)
)

// smallWords stay lower case in title-cased output unless they lead.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "if": true, "in": true,
	"of": true, "on": true, "or": true, "the": true, "to": true, "up": true,
}

// CleanTitle strips website names, download-platform branding, file format
// markers and formatting noise from a raw title and title-cases the result.
// It returns "" when nothing meaningful survives, signalling the caller to
// fall back to another source. Cleaning is idempotent.
func CleanTitle(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := raw

	// Named platforms first: remove the denylisted name wherever it appears.
	lower := strings.ToLower(cleaned)
	for _, platform := range PlatformDenylist {
		for {
			idx := strings.Index(lower, platform)
			if idx < 0 {
				break
			}
			cleaned = cleaned[:idx] + cleaned[idx+len(platform):]
			lower = lower[:idx] + lower[idx+len(platform):]
		}
	}

	for _, re := range titlePatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = dashRuns.ReplaceAllString(cleaned, " ")
	cleaned = spaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = leadingJunk.ReplaceAllString(cleaned, "")
	cleaned = trailingJunk.ReplaceAllString(cleaned, "")
	cleaned = standaloneYear.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) < 3 || onlyDigitsPunct.MatchString(cleaned) {
		return ""
	}

	return titleCase(cleaned)
}

// titleCase capitalizes each word, keeping minor words lower case except
// in the leading position.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		lower := strings.ToLower(word)
		if i > 0 && smallWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first letter of a lower-cased word, skipping
// leading non-letter runes so "(dune)" becomes "(Dune)".
func capitalize(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if r >= 'a' && r <= 'z' {
			runes[i] = r - 'a' + 'A'
			break
		}
		if r >= 'A' && r <= 'Z' {
			break
		}
	}
	return string(runes)
}
