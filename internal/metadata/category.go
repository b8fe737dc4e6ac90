package metadata

import (
	"regexp"
	"strings"
)

// Category signal tables. Each list is matched as lower-cased substrings
// of the combined metadata text. The cascade checks categories strictly
// in the order of Categories; the first hit wins.

var researchSignals = []string{
	"research", "journal", "thesis", "dissertation", "study",
	"proceedings", "conference", "symposium", "peer-reviewed",
	"peer reviewed", "abstract", "methodology", "hypothesis",
	"bibliography", "references", "citation",
	"arxiv", "doi:", "ieee", "acm ", "springer", "elsevier",
}

var educationalSignals = []string{
	"textbook", "curriculum", "course", "lecture", "syllabus",
	"university", "college", "academic", "education", "learning",
	"student edition", "teacher's guide", "instructor",
	"exam", "workbook", "study guide",
}

var selfPublishedSignals = []string{
	"self-published", "self published", "createspace", "lulu",
	"smashwords", "kindle direct", "kdp", "independently published",
	"blurb", "draft2digital", "author house", "authorhouse",
	"iuniverse", "xlibris",
}

// publicDomainSignals are explicit provenance markers. Age alone is not
// enough; see InferCategory for the year rule.
var publicDomainSignals = []string{
	"public domain", "project gutenberg", "gutenberg",
	"creative commons", "cc0", "copyright expired",
	"no rights reserved", "librivox", "wikisource", "archive.org",
}

// publicDomainCutoffYear is the publication year below which a work may
// be treated as public domain, provided the text also carries an age
// qualifier. Works published in 1923 or later never qualify by age.
const publicDomainCutoffYear = 1923

var (
	yearPattern   = regexp.MustCompile(`\b(1[0-9]{3})\b`)
	ageQualifiers = []string{"classic", "vintage", "historical", "ancient"}

	// academicSource matches institutional creator/producer strings.
	academicSource = regexp.MustCompile(`university|college|edu|academic|institute`)

	// personalStory catches self-published works with no platform marker.
	personalStory = regexp.MustCompile(`memoir|autobiography|family.*story|personal.*journey`)
)

// categoryFallbacks run after every primary category misses, catching
// texts whose only hints are generic document or narrative words.
var categoryFallbacks = []struct {
	re *regexp.Regexp
	c  Category
}{
	{regexp.MustCompile(`textbook|manual|guide|tutorial`), CategoryEducational},
	{regexp.MustCompile(`novel|story|memoir|personal`), CategorySelfPublished},
}

// InferCategory classifies book provenance from the combined metadata
// text plus the PDF's creator/producer strings. Categories are checked
// in fixed priority order (research, educational, self-published,
// public-domain) and the first category with any signal wins; when all
// miss, a coarse fallback pass runs before defaulting to "personal".
//
// Public domain requires either an explicit marker such as
// "project gutenberg", or a pre-1923 year appearing together with an
// age qualifier like "classic". A bare old year is not sufficient.
func InferCategory(text, creatorProducer string) Category {
	lower := strings.ToLower(text)

	if containsAny(lower, researchSignals) {
		return CategoryResearch
	}
	if containsAny(lower, educationalSignals) ||
		academicSource.MatchString(strings.ToLower(creatorProducer)) {
		return CategoryEducational
	}
	if containsAny(lower, selfPublishedSignals) || personalStory.MatchString(lower) {
		return CategorySelfPublished
	}
	if isPublicDomain(lower) {
		return CategoryPublicDomain
	}
	for _, fb := range categoryFallbacks {
		if fb.re.MatchString(lower) {
			return fb.c
		}
	}
	return CategoryPersonal
}

func containsAny(lower string, signals []string) bool {
	for _, s := range signals {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

func isPublicDomain(lower string) bool {
	if containsAny(lower, publicDomainSignals) {
		return true
	}
	if !containsAny(lower, ageQualifiers) {
		return false
	}
	for _, m := range yearPattern.FindAllStringSubmatch(lower, -1) {
		if year := parseYear(m[1]); year > 0 && year < publicDomainCutoffYear {
			return true
		}
	}
	return false
}

// parseYear converts a four-digit string already vetted by yearPattern.
func parseYear(s string) int {
	year := 0
	for _, r := range s {
		year = year*10 + int(r-'0')
	}
	return year
}
