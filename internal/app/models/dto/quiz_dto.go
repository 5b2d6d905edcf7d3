package dto

import "github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"

// CreateQuizRequest represents a request to create a quiz for a classroom
type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200" example:"Midterm review"`
	Subject     string `json:"subject" binding:"omitempty,max=100" example:"physics"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// ToModel converts the validated request into a quiz document
func (r *CreateQuizRequest) ToModel() *models.Quiz {
	return &models.Quiz{
		Title:       r.Title,
		Subject:     r.Subject,
		Description: r.Description,
	}
}
