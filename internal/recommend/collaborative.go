package recommend

import (
	"context"
	"fmt"

	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollaborativeScores estimates each translator's fit from completed
// assignments on orders with the same language pair. The result is a
// frequency distribution over translator ids (hex) summing to 1;
// translators absent from history are omitted.
//
// An empty map with a nil error means "no signal": the customer has no
// order history, or nothing was ever completed for this pair. A non-nil
// error means a store read failed; callers are expected to treat that
// the same as no signal.
func (e *Engine) CollaborativeScores(ctx context.Context, order models.Order, customerID primitive.ObjectID) (map[string]float64, error) {
	// A customer with no history gets no collaborative signal at all.
	customerOrders, err := e.history.OrdersByCustomer(ctx, customerID)
	if err != nil {
		return map[string]float64{}, fmt.Errorf("customer order lookup: %w", err)
	}
	if len(customerOrders) == 0 {
		return map[string]float64{}, nil
	}

	// Similarity is exact language-pair match only. Tag similarity is
	// deliberately not factored in; see DESIGN.md.
	history, err := e.history.CompletedOrdersByLanguagePair(ctx, order.SourceLang, order.TargetLang)
	if err != nil {
		return map[string]float64{}, fmt.Errorf("completed order lookup: %w", err)
	}

	counts := make(map[string]int)
	total := 0
	for _, h := range history {
		for _, a := range h.Assignments {
			if a.Status != models.AssignmentStatusCompleted {
				continue
			}
			counts[a.TranslatorID.Hex()]++
			total++
		}
	}
	if total == 0 {
		return map[string]float64{}, nil
	}

	scores := make(map[string]float64, len(counts))
	for id, n := range counts {
		scores[id] = float64(n) / float64(total)
	}
	return scores, nil
}
