package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Teacher defines a teacher document in the 'teachers' collection
type Teacher struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName" example:"Amina"`
	LastName  string             `json:"lastName" bson:"lastName" example:"Okafor"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty" example:"a.okafor@school.edu"`

	// Back-references to classrooms this teacher owns. Insertion order is
	// link-creation order; entries are not deduplicated.
	Classrooms []primitive.ObjectID `json:"classrooms" bson:"classrooms"`
}
