// Package classify scores free deck text against fixed keyword tables to
// assign a business category and the visual theme that follows from it.
// Pure functions, no I/O.
package classify

import (
	"math"
	"regexp"
	"strings"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// lowConfidence is reported when no keyword scored at all: the category
// is a default, not evidence.
const lowConfidence = 0.3

const (
	wholeWordScore = 2
	substringScore = 1
)

type categoryKeywords struct {
	category domain.Category
	keywords []string
}

// Declaration order is the tie-break order: on equal scores the earlier
// category wins.
var categoryTable = []categoryKeywords{
	{domain.CategoryFintech, []string{
		"payments", "banking", "ledger", "lending", "neo-bank", "billing",
		"card", "crypto", "remittance",
	}},
	{domain.CategoryDevtools, []string{
		"sdk", "api", "cli", "ci", "cd", "developer", "observability",
		"monitoring", "testing",
	}},
	{domain.CategoryConsumer, []string{
		"social", "creator", "marketplace", "mobile", "app", "ecommerce",
		"lifestyle",
	}},
	{domain.CategoryB2BSaaS, []string{
		"crm", "workflow", "saas", "enterprise", "billing", "ops",
		"automation", "erp",
	}},
	{domain.CategoryHealthtech, []string{
		"patient", "clinic", "telehealth", "ehr", "hc", "hipaa", "medical",
		"healthcare",
	}},
	{domain.CategoryAIInfra, []string{
		"inference", "embeddings", "vector db", "vector-db", "mlops",
		"model serving", "gpu", "accelerator",
	}},
	{domain.CategoryMarketplace, []string{
		"buyers", "sellers", "two-sided", "listing", "transactions",
		"commissions",
	}},
	{domain.CategoryEdtech, []string{
		"learning", "curriculum", "school", "teacher", "student", "lms",
		"course",
	}},
	{domain.CategoryClimate, []string{
		"carbon", "emissions", "sustainability", "renewable", "cleantech",
		"offsets",
	}},
	{domain.CategoryOther, []string{"other"}},
}

// wordPatterns holds one whole-word matcher per keyword, compiled once.
var wordPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp)
	for _, ck := range categoryTable {
		for _, kw := range ck.keywords {
			if _, ok := m[kw]; !ok {
				m[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
	return m
}()

// DeckText assembles the classification corpus: title, every slide
// heading and every bullet, newline-joined and case-folded.
func DeckText(title string, slides []domain.Slide) string {
	pieces := make([]string, 0, 1+2*len(slides))
	if title != "" {
		pieces = append(pieces, title)
	}
	for _, s := range slides {
		if s.Heading != "" {
			pieces = append(pieces, s.Heading)
		}
		if len(s.Bullets) > 0 {
			pieces = append(pieces, strings.Join(s.Bullets, "\n"))
		}
	}
	return strings.ToLower(strings.Join(pieces, "\n"))
}

// Classify scores text against every category's keyword list: +2 for a
// whole-word hit, +1 for a substring-only hit. The strictly highest total
// wins; ties resolve to the first-declared category. A zero top score
// yields "other" at the fixed low confidence.
func Classify(text string) (domain.Category, float64) {
	text = strings.ToLower(text)

	best := domain.CategoryOther
	bestScore := -1
	for _, ck := range categoryTable {
		score := 0
		for _, kw := range ck.keywords {
			if wordPatterns[kw].MatchString(text) {
				score += wholeWordScore
			} else if strings.Contains(text, kw) {
				score += substringScore
			}
		}
		if score > bestScore {
			best = ck.category
			bestScore = score
		}
	}

	return best, confidence(bestScore)
}

// confidence maps a raw score to (0,1]: fixed low floor at zero score,
// otherwise monotonically increasing and bounded at 1.
func confidence(score int) float64 {
	if score <= 0 {
		return lowConfidence
	}
	return math.Min(1, 0.2+math.Tanh(float64(score)/10))
}
