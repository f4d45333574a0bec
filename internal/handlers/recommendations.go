package handlers

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/polyglotdesk/marketplace-backend/internal/database"
	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/polyglotdesk/marketplace-backend/internal/recommend"
	"github.com/polyglotdesk/marketplace-backend/internal/store"
	"github.com/polyglotdesk/marketplace-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	engineOnce sync.Once
	engine     *recommend.Engine
)

func recommendEngine() *recommend.Engine {
	engineOnce.Do(func() {
		engine = recommend.NewEngine(
			store.NewTranslatorStore(database.DB),
			store.NewOrderStore(database.DB),
			recommend.DefaultConfig(),
		)
	})
	return engine
}

// GetRecommendations returns ranked translator suggestions for an
// order. The list may be empty; it is never an error response.
func GetRecommendations(c *fiber.Ctx) error {
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var order models.Order
	if err := database.GetCollection("orders").FindOne(context.Background(), bson.M{"_id": orderID}).Decode(&order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found")
	}

	userID := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	if order.CustomerID.Hex() != userID && role != "admin" {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your order")
	}

	recommendations := recommendEngine().Recommend(c.Context(), order, order.CustomerID)

	return c.JSON(fiber.Map{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}
