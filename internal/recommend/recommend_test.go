package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// oid builds a deterministic ObjectID for fixtures.
func oid(n byte) primitive.ObjectID {
	var id primitive.ObjectID
	id[11] = n
	return id
}

func boolPtr(b bool) *bool { return &b }

func translator(n byte, languages []string, tags []string, rating float64) models.Translator {
	return models.Translator{
		ID:        oid(n),
		Name:      "Translator",
		Languages: languages,
		Expertise: tags,
		Rating:    rating,
	}
}

type fakeDirectory struct {
	translators []models.Translator
	err         error
}

func (f *fakeDirectory) FindByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]models.Translator, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.translators, nil
}

type fakeHistory struct {
	customerOrders []models.Order
	customerErr    error
	completed      []CompletedOrder
	completedErr   error
}

func (f *fakeHistory) OrdersByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	return f.customerOrders, nil
}

func (f *fakeHistory) CompletedOrdersByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]CompletedOrder, error) {
	if f.completedErr != nil {
		return nil, f.completedErr
	}
	return f.completed, nil
}

func completedOrder(orderN byte, translators ...byte) CompletedOrder {
	co := CompletedOrder{
		Order: models.Order{ID: oid(orderN), Status: models.OrderStatusCompleted},
	}
	for _, n := range translators {
		co.Assignments = append(co.Assignments, models.Assignment{
			OrderID:      oid(orderN),
			TranslatorID: oid(n),
			Status:       models.AssignmentStatusCompleted,
		})
	}
	return co
}

func TestRecommend_HybridWeights(t *testing.T) {
	order := models.Order{
		ID:         oid(100),
		CustomerID: oid(200),
		SourceLang: "English",
		TargetLang: "Spanish",
	}

	// One translator, both languages, rating 5, no tags on the order:
	// content = 0.5 + 0.2 = 0.7. All completed history belongs to it, so
	// collaborative = 1.0. Hybrid = 0.6*0.7 + 0.4*1.0 = 0.82.
	dir := &fakeDirectory{translators: []models.Translator{
		translator(1, []string{"English", "Spanish"}, nil, 5),
	}}
	hist := &fakeHistory{
		customerOrders: []models.Order{{ID: oid(101), CustomerID: oid(200)}},
		completed:      []CompletedOrder{completedOrder(102, 1)},
	}

	engine := NewEngine(dir, hist, DefaultConfig())
	ranked := engine.Recommend(context.Background(), order, order.CustomerID)

	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.7, ranked[0].ContentScore, 1e-9)
	assert.InDelta(t, 1.0, ranked[0].CollaborativeScore, 1e-9)
	assert.InDelta(t, 0.82, ranked[0].HybridScore, 1e-9)
}

func TestRecommend_RanksByHybridScore(t *testing.T) {
	order := models.Order{
		ID:         oid(100),
		CustomerID: oid(200),
		SourceLang: "English",
		TargetLang: "Spanish",
		Tags:       []string{"legal"},
	}

	dir := &fakeDirectory{translators: []models.Translator{
		translator(1, []string{"English", "Spanish"}, nil, 0),
		translator(2, []string{"English", "Spanish"}, []string{"legal"}, 5),
		translator(3, []string{"English", "Spanish"}, nil, 2.5),
	}}
	hist := &fakeHistory{} // no customer history, collaborative stays empty

	engine := NewEngine(dir, hist, DefaultConfig())
	ranked := engine.Recommend(context.Background(), order, order.CustomerID)

	require.Len(t, ranked, 3)
	assert.Equal(t, oid(2), ranked[0].Translator.ID)
	assert.Equal(t, oid(3), ranked[1].Translator.ID)
	assert.Equal(t, oid(1), ranked[2].Translator.ID)
	assert.Zero(t, ranked[0].CollaborativeScore)
}

func TestRecommend_StableTies(t *testing.T) {
	order := models.Order{
		ID:         oid(100),
		CustomerID: oid(200),
		SourceLang: "English",
		TargetLang: "Spanish",
	}

	// Identical profiles score identically; the directory's fetch order
	// must survive sorting.
	dir := &fakeDirectory{translators: []models.Translator{
		translator(5, []string{"English", "Spanish"}, nil, 3),
		translator(1, []string{"English", "Spanish"}, nil, 3),
		translator(9, []string{"English", "Spanish"}, nil, 3),
	}}

	engine := NewEngine(dir, &fakeHistory{}, DefaultConfig())
	ranked := engine.Recommend(context.Background(), order, order.CustomerID)

	require.Len(t, ranked, 3)
	assert.Equal(t, oid(5), ranked[0].Translator.ID)
	assert.Equal(t, oid(1), ranked[1].Translator.ID)
	assert.Equal(t, oid(9), ranked[2].Translator.ID)
}

func TestRecommend_Idempotent(t *testing.T) {
	order := models.Order{
		ID:         oid(100),
		CustomerID: oid(200),
		SourceLang: "English",
		TargetLang: "French",
		Tags:       []string{"medical", "technical"},
	}

	dir := &fakeDirectory{translators: []models.Translator{
		translator(1, []string{"English", "French"}, []string{"medical"}, 4),
		translator(2, []string{"English", "French"}, []string{"technical"}, 4.5),
	}}
	hist := &fakeHistory{
		customerOrders: []models.Order{{ID: oid(101)}},
		completed:      []CompletedOrder{completedOrder(102, 1, 2, 2)},
	}

	engine := NewEngine(dir, hist, DefaultConfig())
	first := engine.Recommend(context.Background(), order, order.CustomerID)
	second := engine.Recommend(context.Background(), order, order.CustomerID)

	assert.Equal(t, first, second)
}

func TestRecommend_NoCandidates(t *testing.T) {
	engine := NewEngine(&fakeDirectory{}, &fakeHistory{}, DefaultConfig())
	ranked := engine.Recommend(context.Background(), models.Order{SourceLang: "English", TargetLang: "Thai"}, oid(200))

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRecommend_DirectoryFailureDegradesToEmpty(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("store unavailable")}
	engine := NewEngine(dir, &fakeHistory{}, DefaultConfig())

	ranked := engine.Recommend(context.Background(), models.Order{SourceLang: "English", TargetLang: "Spanish"}, oid(200))
	assert.Empty(t, ranked)
}

func TestRecommend_CollaborativeFailureKeepsContentRanking(t *testing.T) {
	order := models.Order{
		ID:         oid(100),
		CustomerID: oid(200),
		SourceLang: "English",
		TargetLang: "Spanish",
	}

	dir := &fakeDirectory{translators: []models.Translator{
		translator(1, []string{"English", "Spanish"}, nil, 5),
	}}
	hist := &fakeHistory{customerErr: errors.New("store unavailable")}

	engine := NewEngine(dir, hist, DefaultConfig())
	ranked := engine.Recommend(context.Background(), order, order.CustomerID)

	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.7, ranked[0].ContentScore, 1e-9)
	assert.Zero(t, ranked[0].CollaborativeScore)
	assert.InDelta(t, 0.6*0.7, ranked[0].HybridScore, 1e-9)
}

func TestRecommend_CustomWeights(t *testing.T) {
	order := models.Order{
		ID:         oid(100),
		CustomerID: oid(200),
		SourceLang: "English",
		TargetLang: "Spanish",
	}

	dir := &fakeDirectory{translators: []models.Translator{
		translator(1, []string{"English", "Spanish"}, nil, 5),
	}}
	hist := &fakeHistory{
		customerOrders: []models.Order{{ID: oid(101)}},
		completed:      []CompletedOrder{completedOrder(102, 1)},
	}

	engine := NewEngine(dir, hist, Config{ContentWeight: 1, CollaborativeWeight: 0})
	ranked := engine.Recommend(context.Background(), order, order.CustomerID)

	require.Len(t, ranked, 1)
	assert.InDelta(t, ranked[0].ContentScore, ranked[0].HybridScore, 1e-9)
}
