package recommend

import (
	"strings"

	"github.com/polyglotdesk/marketplace-backend/internal/models"
)

// Content score terms. Base plus the two bonuses cap at 1.0; the
// availability penalty can only shrink the result.
const (
	contentBase         = 0.5
	tagOverlapWeight    = 0.3
	ratingWeight        = 0.2
	unavailablePenalty  = 0.5
	maxTranslatorRating = 5.0
)

// ContentScores scores each translator against the order on declared
// attributes alone. The result maps translator id (hex) to a score in
// [0,1]. A translator missing either order language scores exactly 0,
// whatever its tags or rating; the directory pre-filters on languages
// but the scorer does not trust that.
func ContentScores(order models.Order, translators []models.Translator) map[string]float64 {
	scores := make(map[string]float64, len(translators))

	orderTags := make([]string, 0, len(order.Tags))
	for _, tag := range order.Tags {
		orderTags = append(orderTags, strings.ToLower(strings.TrimSpace(tag)))
	}

	for _, t := range translators {
		if !t.SpeaksPair(order.SourceLang, order.TargetLang) {
			scores[t.ID.Hex()] = 0
			continue
		}

		score := contentBase

		if len(orderTags) > 0 {
			translatorTags := t.AllTags()
			matching := 0
			for _, tag := range orderTags {
				if _, ok := translatorTags[tag]; ok {
					matching++
				}
			}
			score += float64(matching) / float64(len(orderTags)) * tagOverlapWeight
		}

		score += t.Rating / maxTranslatorRating * ratingWeight

		if t.Available != nil && !*t.Available {
			score *= unavailablePenalty
		}

		scores[t.ID.Hex()] = score
	}

	return scores
}
