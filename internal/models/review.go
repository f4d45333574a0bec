package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderID      primitive.ObjectID `json:"orderId" bson:"orderId" validate:"required"`
	CustomerID   primitive.ObjectID `json:"customerId" bson:"customerId"`
	TranslatorID primitive.ObjectID `json:"translatorId" bson:"translatorId"`
	Rating       int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment      string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

type ReviewRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
