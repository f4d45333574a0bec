package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/polyglotdesk/marketplace-backend/internal/database"
	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/polyglotdesk/marketplace-backend/internal/store"
	"github.com/polyglotdesk/marketplace-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RegisterTranslator creates or updates the caller's translator profile.
func RegisterTranslator(c *fiber.Ctx) error {
	var req models.TranslatorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	role, _ := c.Locals("role").(string)
	if role != "translator" && role != "admin" {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Translator account required")
	}

	userID := c.Locals("userId").(string)
	userObjID, _ := primitive.ObjectIDFromHex(userID)

	ctx := context.Background()
	collection := database.GetCollection("translators")

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":       req.Name,
			"languages":  req.Languages,
			"expertise":  req.Expertise,
			"customTags": req.CustomTags,
			"available":  req.Available,
			"updatedAt":  now,
		},
		"$setOnInsert": bson.M{
			"rating":          0.0,
			"ratingCount":     0,
			"completedOrders": int64(0),
			"totalOrders":     int64(0),
			"createdAt":       now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var translator models.Translator
	if err := collection.FindOneAndUpdate(ctx, bson.M{"userId": userObjID}, update, opts).Decode(&translator); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save translator profile")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"translator": translator,
	})
}

// GetTranslators lists translators, optionally filtered to a language
// pair via ?source=&target=.
func GetTranslators(c *fiber.Ctx) error {
	source := c.Query("source")
	target := c.Query("target")

	if source != "" && target != "" {
		translators, err := store.NewTranslatorStore(database.DB).FindByLanguagePair(context.Background(), source, target)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch translators")
		}
		return c.JSON(fiber.Map{
			"translators": translators,
		})
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}).SetLimit(100)
	cursor, err := database.GetCollection("translators").Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch translators")
	}
	defer cursor.Close(context.Background())

	var translators []models.Translator
	if err := cursor.All(context.Background(), &translators); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to decode translators")
	}

	return c.JSON(fiber.Map{
		"translators": translators,
	})
}
