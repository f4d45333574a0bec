// Package store adapts MongoDB collections to the read interfaces the
// recommendation engine consumes.
package store

import (
	"context"
	"regexp"

	"github.com/polyglotdesk/marketplace-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TranslatorStore struct {
	col *mongo.Collection
}

func NewTranslatorStore(db *mongo.Database) *TranslatorStore {
	return &TranslatorStore{col: db.Collection("translators")}
}

// FindByLanguagePair returns translators whose language list contains
// both languages, case-insensitively. The fetch order is rating
// descending with _id as tiebreak, so it is deterministic; the
// recommendation engine relies on that for stable tie handling.
func (s *TranslatorStore) FindByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]models.Translator, error) {
	filter := bson.M{"languages": bson.M{"$all": bson.A{
		exactFold(sourceLang),
		exactFold(targetLang),
	}}}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var translators []models.Translator
	if err := cursor.All(ctx, &translators); err != nil {
		return nil, err
	}
	return translators, nil
}

// exactFold builds a whole-string case-insensitive match.
func exactFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}
