package store

import (
	"context"

	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/polyglotdesk/marketplace-backend/internal/recommend"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderStore struct {
	orders      *mongo.Collection
	assignments *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{
		orders:      db.Collection("orders"),
		assignments: db.Collection("assignments"),
	}
}

// OrdersByCustomer returns the customer's orders in any status.
func (s *OrderStore) OrdersByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	cursor, err := s.orders.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CompletedOrdersByLanguagePair returns completed orders on the exact
// language pair together with their assignments.
func (s *OrderStore) CompletedOrdersByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]recommend.CompletedOrder, error) {
	filter := bson.M{
		"status":     models.OrderStatusCompleted,
		"sourceLang": exactFold(sourceLang),
		"targetLang": exactFold(targetLang),
	}

	cursor, err := s.orders.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	aCursor, err := s.assignments.Find(ctx, bson.M{"orderId": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer aCursor.Close(ctx)

	var assignments []models.Assignment
	if err := aCursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	byOrder := make(map[primitive.ObjectID][]models.Assignment, len(orders))
	for _, a := range assignments {
		byOrder[a.OrderID] = append(byOrder[a.OrderID], a)
	}

	history := make([]recommend.CompletedOrder, 0, len(orders))
	for _, o := range orders {
		history = append(history, recommend.CompletedOrder{
			Order:       o,
			Assignments: byOrder[o.ID],
		})
	}
	return history, nil
}
