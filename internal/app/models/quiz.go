package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz defines a quiz document in the 'quizzes' collection. A quiz carries
// no reference back to its classroom; the classroom's quizHistory holds the
// only link.
type Quiz struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" example:"Midterm review"`
	Subject     string             `json:"subject,omitempty" bson:"subject,omitempty" example:"physics"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
