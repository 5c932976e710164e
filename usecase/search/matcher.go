package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/planly/backend/domain"
)

// Candidate is one task plus the denormalized text the matchers score
// against.
type Candidate struct {
	Task     domain.Task
	ListName string
	Labels   []domain.Label
}

// Matcher scores a candidate against a query. A non-positive score
// means no match. Higher scores rank earlier in the result.
type Matcher interface {
	Score(query string, c *Candidate) int
}

// Field weights. A hit on the task name outranks any number of hits on
// secondary fields.
const (
	weightName        = 100
	weightDescription = 40
	weightList        = 20
	weightLabel       = 20
)

// SubstringMatcher does case-insensitive containment over name,
// description, list name and label names.
type SubstringMatcher struct{}

func (SubstringMatcher) Score(query string, c *Candidate) int {
	q := strings.ToLower(query)

	score := 0
	if strings.Contains(strings.ToLower(c.Task.Name), q) {
		score += weightName
	}
	if c.Task.Description != nil && strings.Contains(strings.ToLower(*c.Task.Description), q) {
		score += weightDescription
	}
	if strings.Contains(strings.ToLower(c.ListName), q) {
		score += weightList
	}
	for _, l := range c.Labels {
		if strings.Contains(strings.ToLower(l.Name), q) {
			score += weightLabel
			break
		}
	}
	return score
}

// FuzzyMatcher tolerates typos and partial words, trading strictness
// for recall. It scores the task name only; secondary fields fall back
// to substring containment.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Score(query string, c *Candidate) int {
	matches := fuzzy.Find(query, []string{c.Task.Name})
	if len(matches) > 0 {
		// fuzzy scores can go negative for poor alignments; floor at 1
		// so a name match always beats secondary-field-only hits below.
		s := matches[0].Score
		if s < 1 {
			s = 1
		}
		return weightName + s
	}
	return SubstringMatcher{}.Score(query, c)
}

// NewMatcher picks a matcher by configuration name, defaulting to
// substring for anything unrecognized.
func NewMatcher(kind string) Matcher {
	if strings.EqualFold(kind, "fuzzy") {
		return FuzzyMatcher{}
	}
	return SubstringMatcher{}
}
