package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
)

// CreateStudentRequest represents a request to create a student
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=100" example:"Kwame"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100" example:"Mensah"`
	Email     string `json:"email" binding:"omitempty,email" example:"k.mensah@school.edu"`
}

// ToModel converts the validated request into a student document
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Classrooms: []primitive.ObjectID{},
	}
}
