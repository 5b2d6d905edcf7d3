package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
)

// CreateTeacherRequest represents a request to create a teacher
type CreateTeacherRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=100" example:"Amina"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100" example:"Okafor"`
	Email     string `json:"email" binding:"omitempty,email" example:"a.okafor@school.edu"`
}

// ToModel converts the validated request into a teacher document
func (r *CreateTeacherRequest) ToModel() *models.Teacher {
	return &models.Teacher{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Classrooms: []primitive.ObjectID{},
	}
}
