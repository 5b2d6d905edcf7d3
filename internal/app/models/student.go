package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student defines a student document in the 'students' collection
type Student struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName" example:"Kwame"`
	LastName  string             `json:"lastName" bson:"lastName" example:"Mensah"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty" example:"k.mensah@school.edu"`

	// Back-references to classrooms this student belongs to, same shape as
	// Teacher.Classrooms.
	Classrooms []primitive.ObjectID `json:"classrooms" bson:"classrooms"`
}
