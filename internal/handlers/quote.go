package handlers

import (
	"errors"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"github.com/polyglotdesk/marketplace-backend/internal/pricing"
	"github.com/polyglotdesk/marketplace-backend/internal/services"
	"github.com/polyglotdesk/marketplace-backend/utils"
)

var (
	pricingOnce sync.Once
	pricingCfg  pricing.Config
)

// pricingConfig reads the rate card once, allowing env overrides of the
// documented defaults.
func pricingConfig() pricing.Config {
	pricingOnce.Do(func() {
		pricingCfg = pricing.DefaultConfig()
		if v, err := strconv.ParseFloat(os.Getenv("PRICING_BASE_RATE"), 64); err == nil && v > 0 {
			pricingCfg.BaseRate = v
		}
		if v, err := strconv.ParseFloat(os.Getenv("PRICING_WORDS_PER_HOUR"), 64); err == nil && v > 0 {
			pricingCfg.WordsPerHour = v
		}
	})
	return pricingCfg
}

// Quote prices a job from an explicit word count and complexity score.
func Quote(c *fiber.Ctx) error {
	var req models.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	quote, err := pricingConfig().Price(req.WordCount, req.ComplexityScore, req.SourceLang, req.TargetLang)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidInput) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to price order")
	}

	return c.JSON(fiber.Map{
		"quote":      quote,
		"complexity": pricing.Classify(quote.ComplexityScore),
	})
}

// QuoteDocument prices a job straight from a document URL: the text is
// fetched and word-counted, then classified for tags and complexity.
func QuoteDocument(c *fiber.Ctx) error {
	var req models.DocumentQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	doc, err := services.FetchDocument(req.DocumentURL)
	if err != nil {
		log.Printf("QuoteDocument fetch error: %v", err)
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to fetch document: "+err.Error())
	}

	classification := classifyDocument(c.Context(), doc.Text)

	quote, err := pricingConfig().Price(doc.WordCount, classification.ComplexityScore, req.SourceLang, req.TargetLang)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to price document")
	}

	return c.JSON(fiber.Map{
		"quote":      quote,
		"complexity": pricing.Classify(quote.ComplexityScore),
		"tags":       classification.Tags,
	})
}
