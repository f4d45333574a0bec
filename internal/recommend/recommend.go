// Package recommend ranks translators for an order by blending a
// content-based score (language fit, tag overlap, rating) with a
// collaborative score (completion history on the same language pair).
//
// The engine owns no storage. It reads immutable snapshots through the
// TranslatorDirectory and OrderHistory interfaces injected at
// construction, so two calls against unchanged stores produce identical
// rankings.
package recommend

import (
	"context"
	"log"
	"sort"

	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TranslatorDirectory lists candidate translators for a language pair.
// An empty result is a valid outcome, not an error.
type TranslatorDirectory interface {
	FindByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]models.Translator, error)
}

// CompletedOrder pairs a historical order with its assignments.
type CompletedOrder struct {
	Order       models.Order
	Assignments []models.Assignment
}

// OrderHistory exposes the read-only order queries the scorers need.
type OrderHistory interface {
	OrdersByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error)
	CompletedOrdersByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]CompletedOrder, error)
}

// Config carries the hybrid blend weights. Defaults favour content fit.
type Config struct {
	ContentWeight       float64
	CollaborativeWeight float64
}

func DefaultConfig() Config {
	return Config{
		ContentWeight:       0.6,
		CollaborativeWeight: 0.4,
	}
}

// ScoredTranslator is one ranked result with its score breakdown.
type ScoredTranslator struct {
	Translator         models.Translator `json:"translator"`
	ContentScore       float64           `json:"contentScore"`
	CollaborativeScore float64           `json:"collaborativeScore"`
	HybridScore        float64           `json:"hybridScore"`
}

type Engine struct {
	directory TranslatorDirectory
	history   OrderHistory
	cfg       Config
}

func NewEngine(directory TranslatorDirectory, history OrderHistory, cfg Config) *Engine {
	return &Engine{
		directory: directory,
		history:   history,
		cfg:       cfg,
	}
}

// Recommend returns candidate translators for the order ranked
// richest-first by hybrid score. Ties keep the directory's fetch order.
//
// Recommendation never hard-fails: a directory or history read error is
// logged and degrades the result to an empty or partially scored list.
func (e *Engine) Recommend(ctx context.Context, order models.Order, customerID primitive.ObjectID) []ScoredTranslator {
	candidates, err := e.directory.FindByLanguagePair(ctx, order.SourceLang, order.TargetLang)
	if err != nil {
		log.Printf("recommend: translator lookup failed for %s->%s: %v", order.SourceLang, order.TargetLang, err)
		return []ScoredTranslator{}
	}
	if len(candidates) == 0 {
		return []ScoredTranslator{}
	}

	content := ContentScores(order, candidates)

	collaborative, err := e.CollaborativeScores(ctx, order, customerID)
	if err != nil {
		log.Printf("recommend: collaborative scoring degraded to empty for customer %s: %v", customerID.Hex(), err)
		collaborative = map[string]float64{}
	}

	ranked := make([]ScoredTranslator, 0, len(candidates))
	for _, t := range candidates {
		id := t.ID.Hex()
		cs := content[id]
		cf := collaborative[id]
		ranked = append(ranked, ScoredTranslator{
			Translator:         t,
			ContentScore:       cs,
			CollaborativeScore: cf,
			HybridScore:        e.cfg.ContentWeight*cs + e.cfg.CollaborativeWeight*cf,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HybridScore > ranked[j].HybridScore
	})

	return ranked
}
