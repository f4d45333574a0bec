package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

const (
	AssignmentStatusAssigned  = "assigned"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID      primitive.ObjectID `json:"customerId" bson:"customerId"`
	SourceLang      string             `json:"sourceLang" bson:"sourceLang" validate:"required"`
	TargetLang      string             `json:"targetLang" bson:"targetLang" validate:"required"`
	Tags            []string           `json:"tags" bson:"tags"`
	ComplexityScore float64            `json:"complexityScore" bson:"complexityScore"`
	DocumentURL     string             `json:"documentUrl,omitempty" bson:"documentUrl,omitempty"`
	WordCount       int                `json:"wordCount" bson:"wordCount"`
	Cost            float64            `json:"cost" bson:"cost"`
	EstimatedHours  float64            `json:"estimatedHours" bson:"estimatedHours"`
	Status          OrderStatus        `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Assignment records which translator worked an order. Completed
// assignments are the raw material for collaborative scoring.
type Assignment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderID      primitive.ObjectID `json:"orderId" bson:"orderId"`
	TranslatorID primitive.ObjectID `json:"translatorId" bson:"translatorId"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateOrderRequest struct {
	SourceLang  string `json:"sourceLang" validate:"required"`
	TargetLang  string `json:"targetLang" validate:"required"`
	DocumentURL string `json:"documentUrl" validate:"required,url"`
}

type AssignOrderRequest struct {
	TranslatorID string `json:"translatorId" validate:"required"`
}
