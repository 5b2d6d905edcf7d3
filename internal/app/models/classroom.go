package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Classroom defines a classroom document in the 'classrooms' collection.
// The classroom is the owning side of every relation it participates in:
// it references its teacher, its students and its quiz history, while the
// teacher and student documents carry denormalized back-references that are
// maintained by the link maintainer after creation.
type Classroom struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name" example:"Physics 101"`
	Subject string             `json:"subject,omitempty" bson:"subject,omitempty" example:"physics"`

	// Teacher is required, exactly one per classroom.
	Teacher primitive.ObjectID `json:"teacher" bson:"teacher"`

	// Students enrolled at creation time. May be empty.
	Students []primitive.ObjectID `json:"students" bson:"students"`

	// QuizHistory starts empty and grows only through quiz attachment.
	QuizHistory []primitive.ObjectID `json:"quizHistory" bson:"quizHistory"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
