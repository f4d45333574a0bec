package handlers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/polyglotdesk/marketplace-backend/internal/database"
	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/polyglotdesk/marketplace-backend/internal/pricing"
	"github.com/polyglotdesk/marketplace-backend/internal/services"
	"github.com/polyglotdesk/marketplace-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	classifierOnce sync.Once
	classifier     *services.ClassifierService
)

func documentClassifier() *services.ClassifierService {
	classifierOnce.Do(func() {
		svc, err := services.NewClassifierService()
		if err != nil {
			log.Printf("Document classifier disabled: %v", err)
			return
		}
		classifier = svc
	})
	return classifier
}

// classifyDocument prefers the LLM classifier and falls back to the
// surface heuristic with no tags.
func classifyDocument(ctx context.Context, text string) services.Classification {
	if svc := documentClassifier(); svc != nil {
		cls, err := svc.ClassifyDocument(ctx, text)
		if err == nil {
			return cls
		}
		log.Printf("Document classification failed, using heuristic: %v", err)
	}
	return services.Classification{ComplexityScore: services.EstimateComplexity(text)}
}

// CreateOrder ingests a document, classifies and prices it, and stores
// the resulting pending order.
func CreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	userID := c.Locals("userId").(string)
	customerID, _ := primitive.ObjectIDFromHex(userID)

	doc, err := services.FetchDocument(req.DocumentURL)
	if err != nil {
		log.Printf("CreateOrder fetch error: %v", err)
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to fetch document: "+err.Error())
	}

	classification := classifyDocument(c.Context(), doc.Text)

	quote, err := pricingConfig().Price(doc.WordCount, classification.ComplexityScore, req.SourceLang, req.TargetLang)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to price order")
	}

	order := models.Order{
		ID:              primitive.NewObjectID(),
		CustomerID:      customerID,
		SourceLang:      req.SourceLang,
		TargetLang:      req.TargetLang,
		Tags:            classification.Tags,
		ComplexityScore: classification.ComplexityScore,
		DocumentURL:     req.DocumentURL,
		WordCount:       doc.WordCount,
		Cost:            quote.Cost,
		EstimatedHours:  quote.EstimatedHours,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	collection := database.GetCollection("orders")
	if _, err := collection.InsertOne(context.Background(), order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save order")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":      order,
		"complexity": pricing.Classify(order.ComplexityScore),
	})
}

// GetOrders lists the caller's orders, most recent first.
func GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)
	customerID, _ := primitive.ObjectIDFromHex(userID)

	collection := database.GetCollection("orders")

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(50)
	cursor, err := collection.Find(context.Background(), bson.M{"customerId": customerID}, opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}
	defer cursor.Close(context.Background())

	var orders []models.Order
	if err := cursor.All(context.Background(), &orders); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to decode orders")
	}

	return c.JSON(fiber.Map{
		"orders": orders,
	})
}

// AssignOrder puts a translator on a pending order.
func AssignOrder(c *fiber.Ctx) error {
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var req models.AssignOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	translatorID, err := primitive.ObjectIDFromHex(req.TranslatorID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translator ID")
	}

	ctx := context.Background()

	ordersCol := database.GetCollection("orders")
	var order models.Order
	if err := ordersCol.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found")
	}

	userID := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	if order.CustomerID.Hex() != userID && role != "admin" {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your order")
	}
	if order.Status != models.OrderStatusPending {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Order is not pending")
	}

	translatorsCol := database.GetCollection("translators")
	var translator models.Translator
	if err := translatorsCol.FindOne(ctx, bson.M{"_id": translatorID}).Decode(&translator); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translator not found")
	}

	assignment := models.Assignment{
		ID:           primitive.NewObjectID(),
		OrderID:      orderID,
		TranslatorID: translatorID,
		Status:       models.AssignmentStatusAssigned,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := database.GetCollection("assignments").InsertOne(ctx, assignment); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save assignment")
	}

	_, err = ordersCol.UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{
		"$set": bson.M{"status": models.OrderStatusAssigned, "updatedAt": time.Now()},
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update order")
	}

	_, _ = translatorsCol.UpdateOne(ctx, bson.M{"_id": translatorID}, bson.M{
		"$inc": bson.M{"totalOrders": 1},
	})

	return c.JSON(fiber.Map{
		"assignment": assignment,
	})
}

// CompleteOrder closes an assigned order. Completed assignments feed
// the collaborative scorer, so both records flip together.
func CompleteOrder(c *fiber.Ctx) error {
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	ctx := context.Background()

	ordersCol := database.GetCollection("orders")
	var order models.Order
	if err := ordersCol.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found")
	}

	userID := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	if order.CustomerID.Hex() != userID && role != "admin" {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your order")
	}
	if order.Status != models.OrderStatusAssigned {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Order is not assigned")
	}

	assignmentsCol := database.GetCollection("assignments")
	var assignment models.Assignment
	filter := bson.M{"orderId": orderID, "status": models.AssignmentStatusAssigned}
	if err := assignmentsCol.FindOne(ctx, filter).Decode(&assignment); err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "No active assignment for order")
	}

	_, err = assignmentsCol.UpdateOne(ctx, bson.M{"_id": assignment.ID}, bson.M{
		"$set": bson.M{"status": models.AssignmentStatusCompleted, "updatedAt": time.Now()},
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}

	_, err = ordersCol.UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{
		"$set": bson.M{"status": models.OrderStatusCompleted, "updatedAt": time.Now()},
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update order")
	}

	_, _ = database.GetCollection("translators").UpdateOne(ctx, bson.M{"_id": assignment.TranslatorID}, bson.M{
		"$inc": bson.M{"completedOrders": 1},
	})

	return c.JSON(fiber.Map{
		"orderId": orderID.Hex(),
		"status":  models.OrderStatusCompleted,
	})
}
