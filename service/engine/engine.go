// Package engine computes relevance, recommendation, price and demand
// scores over the equipment catalog. All functions are pure: they never
// mutate their inputs and keep no state between calls.
package engine

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/seniormugambe/lend/model"
)

// Scored wraps an equipment record with the transient score computed
// for one ranking call.
type Scored struct {
	model.Equipment
	Score float64 `json:"score"`
}

type Season string

const (
	SeasonPeak   Season = "peak"
	SeasonNormal Season = "normal"
	SeasonLow    Season = "low"
)

var ErrNegativeBasePrice = errors.New("base price must be >= 0")

// SmartSearch ranks items against a free-text query. An empty or
// whitespace-only query returns every item in catalog order with a zero
// score and no filtering. Ties keep catalog order (stable sort).
func SmartSearch(query string, items []model.Equipment) []Scored {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		out := make([]Scored, len(items))
		for i, it := range items {
			out[i] = Scored{Equipment: it}
		}
		return out
	}

	terms := strings.Fields(normalized)

	var out []Scored
	for _, it := range items {
		text := searchableText(it)

		var score float64
		if strings.Contains(text, normalized) {
			score += 100
		}
		for _, term := range terms {
			if strings.Contains(text, term) {
				score += 10
			}
			// fuzzy and substring bonuses stack
			if fuzzyMatch(term, text) {
				score += 5
			}
		}
		if strings.Contains(strings.ToLower(it.Category), normalized) {
			score += 50
		}
		score += it.Rating * 2
		if it.Availability {
			score += 20
		}

		if score > 0 {
			out = append(out, Scored{Equipment: it, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Recommendations scores the whole catalog against the viewing context
// and returns the top six.
func Recommendations(history []string, current *model.Equipment, items []model.Equipment) []Scored {
	out := make([]Scored, 0, len(items))
	for _, it := range items {
		var score float64

		if current != nil && it.Category == current.Category && it.ID != current.ID {
			score += 50
		}
		for _, cat := range history {
			if it.Category == cat {
				score += 30
			}
		}
		score += it.Rating * 10
		if it.Availability {
			score += 25
		}
		if it.Rating >= 4.5 && it.Availability {
			score += 40
		}

		out = append(out, Scored{Equipment: it, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

// OptimalPrice adjusts a base price for demand (0-100) and season,
// rounded to two decimals.
func OptimalPrice(basePrice, demand float64, season Season) (float64, error) {
	if basePrice < 0 {
		return 0, ErrNegativeBasePrice
	}

	multiplier := 1 + demand/200
	switch season {
	case SeasonPeak:
		multiplier *= 1.3
	case SeasonLow:
		multiplier *= 0.8
	}

	return math.Round(basePrice*multiplier*100) / 100, nil
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters are AND-combined predicates; a zero-valued field imposes no
// constraint.
type Filters struct {
	Categories    []string    `json:"categories,omitempty"`
	PriceRange    *PriceRange `json:"price_range,omitempty"`
	MinRating     float64     `json:"min_rating,omitempty"`
	Location      string      `json:"location,omitempty"`
	AvailableOnly bool        `json:"available_only,omitempty"`
}

// Filter keeps items matching every present filter field.
func Filter(items []model.Equipment, f Filters) []model.Equipment {
	var out []model.Equipment
	for _, it := range items {
		if len(f.Categories) > 0 && !contains(f.Categories, it.Category) {
			continue
		}
		if f.PriceRange != nil && (it.Price < f.PriceRange.Min || it.Price > f.PriceRange.Max) {
			continue
		}
		if f.MinRating > 0 && it.Rating < f.MinRating {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(it.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.AvailableOnly && !it.Availability {
			continue
		}
		out = append(out, it)
	}
	return out
}

type Sentiment struct {
	Label string `json:"sentiment"`
	Score int    `json:"score"`
}

var (
	positiveWords = []string{"excellent", "great", "amazing", "good", "perfect", "love", "best", "fantastic"}
	negativeWords = []string{"bad", "poor", "terrible", "worst", "disappointing", "broken", "damaged"}
)

// ReviewSentiment counts fixed positive and negative word hits in the
// review text; score = positive hits - negative hits.
func ReviewSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	score := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
		}
	}

	switch {
	case score > 0:
		return Sentiment{Label: "positive", Score: score}
	case score < 0:
		return Sentiment{Label: "negative", Score: score}
	default:
		return Sentiment{Label: "neutral", Score: 0}
	}
}

// PredictDemand averages rental counts for exact category+location
// matches, scaled into 0-100. No history for the pair means medium
// demand (50).
func PredictDemand(category, location string, history []model.DemandRecord) int {
	var sum, n int
	for _, h := range history {
		if h.Category == category && h.Location == location {
			sum += h.Rentals
			n++
		}
	}
	if n == 0 {
		return 50
	}

	avg := float64(sum) / float64(n)
	scaled := int(math.Round(avg / 10 * 100))
	if scaled > 100 {
		return 100
	}
	return scaled
}

func searchableText(it model.Equipment) string {
	parts := []string{it.Name, it.Description, it.Category, strings.Join(it.Features, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}

// fuzzyMatch reports whether term approximately matches any word of
// text: length delta <= 2 and at most 2 positional rune mismatches,
// counting out-of-range positions as mismatches.
func fuzzyMatch(term, text string) bool {
	tr := []rune(term)
	for _, word := range strings.Fields(text) {
		wr := []rune(word)
		if abs(len(wr)-len(tr)) > 2 {
			continue
		}

		max := len(wr)
		if len(tr) > max {
			max = len(tr)
		}
		differences := 0
		for i := 0; i < max && differences <= 2; i++ {
			if i >= len(wr) || i >= len(tr) || wr[i] != tr[i] {
				differences++
			}
		}
		if differences <= 2 {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
