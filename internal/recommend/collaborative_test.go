package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollaborativeScores_NoCustomerHistory(t *testing.T) {
	engine := NewEngine(&fakeDirectory{}, &fakeHistory{}, DefaultConfig())

	scores, err := engine.CollaborativeScores(context.Background(), models.Order{SourceLang: "English", TargetLang: "Spanish"}, oid(200))
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestCollaborativeScores_FrequencyDistribution(t *testing.T) {
	hist := &fakeHistory{
		customerOrders: []models.Order{{ID: oid(101)}},
		completed: []CompletedOrder{
			completedOrder(102, 1),
			completedOrder(103, 1, 2),
			completedOrder(104, 1),
		},
	}
	engine := NewEngine(&fakeDirectory{}, hist, DefaultConfig())

	scores, err := engine.CollaborativeScores(context.Background(), models.Order{SourceLang: "English", TargetLang: "Spanish"}, oid(200))
	require.NoError(t, err)

	require.Len(t, scores, 2)
	assert.InDelta(t, 0.75, scores[oid(1).Hex()], 1e-9)
	assert.InDelta(t, 0.25, scores[oid(2).Hex()], 1e-9)

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestCollaborativeScores_IgnoresIncompleteAssignments(t *testing.T) {
	co := completedOrder(102, 1)
	co.Assignments = append(co.Assignments, models.Assignment{
		OrderID:      oid(102),
		TranslatorID: oid(2),
		Status:       models.AssignmentStatusCancelled,
	})

	hist := &fakeHistory{
		customerOrders: []models.Order{{ID: oid(101)}},
		completed:      []CompletedOrder{co},
	}
	engine := NewEngine(&fakeDirectory{}, hist, DefaultConfig())

	scores, err := engine.CollaborativeScores(context.Background(), models.Order{SourceLang: "English", TargetLang: "Spanish"}, oid(200))
	require.NoError(t, err)

	require.Len(t, scores, 1)
	assert.InDelta(t, 1.0, scores[oid(1).Hex()], 1e-9)
}

func TestCollaborativeScores_NoCompletedAssignments(t *testing.T) {
	hist := &fakeHistory{
		customerOrders: []models.Order{{ID: oid(101)}},
		completed: []CompletedOrder{
			{Order: models.Order{ID: oid(102), Status: models.OrderStatusCompleted}},
		},
	}
	engine := NewEngine(&fakeDirectory{}, hist, DefaultConfig())

	scores, err := engine.CollaborativeScores(context.Background(), models.Order{SourceLang: "English", TargetLang: "Spanish"}, oid(200))
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestCollaborativeScores_StoreErrors(t *testing.T) {
	order := models.Order{SourceLang: "English", TargetLang: "Spanish"}

	engine := NewEngine(&fakeDirectory{}, &fakeHistory{customerErr: errors.New("down")}, DefaultConfig())
	scores, err := engine.CollaborativeScores(context.Background(), order, oid(200))
	assert.Error(t, err)
	assert.Empty(t, scores)

	engine = NewEngine(&fakeDirectory{}, &fakeHistory{
		customerOrders: []models.Order{{ID: oid(101)}},
		completedErr:   errors.New("down"),
	}, DefaultConfig())
	scores, err = engine.CollaborativeScores(context.Background(), order, oid(200))
	assert.Error(t, err)
	assert.Empty(t, scores)
}
