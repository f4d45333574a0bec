package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/polyglotdesk/marketplace-backend/internal/database"
	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/polyglotdesk/marketplace-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmitReview records a rating for a completed order and folds it
// into the translator's running mean, which the content scorer reads.
func SubmitReview(c *fiber.Ctx) error {
	var req models.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	userID := c.Locals("userId").(string)
	customerID, _ := primitive.ObjectIDFromHex(userID)

	ctx := context.Background()

	var order models.Order
	if err := database.GetCollection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found")
	}
	if order.CustomerID != customerID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your order")
	}
	if order.Status != models.OrderStatusCompleted {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Order is not completed")
	}

	var assignment models.Assignment
	filter := bson.M{"orderId": orderID, "status": models.AssignmentStatusCompleted}
	if err := database.GetCollection("assignments").FindOne(ctx, filter).Decode(&assignment); err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "No completed assignment for order")
	}

	review := models.Review{
		ID:           primitive.NewObjectID(),
		OrderID:      orderID,
		CustomerID:   customerID,
		TranslatorID: assignment.TranslatorID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}

	if _, err := database.GetCollection("reviews").InsertOne(ctx, review); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save review")
	}

	// Fold the new rating into the running mean.
	translatorsCol := database.GetCollection("translators")
	var translator models.Translator
	if err := translatorsCol.FindOne(ctx, bson.M{"_id": assignment.TranslatorID}).Decode(&translator); err == nil {
		newCount := translator.RatingCount + 1
		newRating := (translator.Rating*float64(translator.RatingCount) + float64(req.Rating)) / float64(newCount)
		_, _ = translatorsCol.UpdateOne(ctx, bson.M{"_id": translator.ID}, bson.M{
			"$set": bson.M{"rating": newRating, "ratingCount": newCount, "updatedAt": time.Now()},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"review": review,
	})
}

// GetReviews lists reviews for a translator.
func GetReviews(c *fiber.Ctx) error {
	translatorID, err := primitive.ObjectIDFromHex(c.Params("translatorId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translator ID")
	}

	cursor, err := database.GetCollection("reviews").Find(context.Background(), bson.M{"translatorId": translatorID})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reviews")
	}
	defer cursor.Close(context.Background())

	var reviews []models.Review
	if err := cursor.All(context.Background(), &reviews); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to decode reviews")
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
