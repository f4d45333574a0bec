package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Translator struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	Name        string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Languages   []string           `json:"languages" bson:"languages" validate:"required,min=2"`
	Expertise   []string           `json:"expertise" bson:"expertise"`
	CustomTags  []string           `json:"customTags,omitempty" bson:"customTags,omitempty"`
	Rating      float64            `json:"rating" bson:"rating" validate:"min=0,max=5"`
	RatingCount int                `json:"ratingCount" bson:"ratingCount"`
	// Available is a tri-state flag: nil means "not stated", which counts as available.
	Available       *bool     `json:"available,omitempty" bson:"available,omitempty"`
	CompletedOrders int64     `json:"completedOrders" bson:"completedOrders"`
	TotalOrders     int64     `json:"totalOrders" bson:"totalOrders"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SpeaksPair reports whether both languages appear in the translator's
// language list. Matching is case-insensitive.
func (t Translator) SpeaksPair(sourceLang, targetLang string) bool {
	return t.speaks(sourceLang) && t.speaks(targetLang)
}

func (t Translator) speaks(lang string) bool {
	for _, l := range t.Languages {
		if strings.EqualFold(strings.TrimSpace(l), strings.TrimSpace(lang)) {
			return true
		}
	}
	return false
}

// AllTags returns expertise and custom tags as one set, lowercased.
func (t Translator) AllTags() map[string]struct{} {
	tags := make(map[string]struct{}, len(t.Expertise)+len(t.CustomTags))
	for _, tag := range t.Expertise {
		tags[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	for _, tag := range t.CustomTags {
		tags[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	return tags
}

// IsAvailable treats an unset flag as available.
func (t Translator) IsAvailable() bool {
	return t.Available == nil || *t.Available
}

type TranslatorRequest struct {
	Name       string   `json:"name" validate:"required,min=2,max=100"`
	Languages  []string `json:"languages" validate:"required,min=2,dive,required"`
	Expertise  []string `json:"expertise"`
	CustomTags []string `json:"customTags,omitempty"`
	Available  *bool    `json:"available,omitempty"`
}
