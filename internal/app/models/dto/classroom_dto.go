package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
)

// CreateClassroomRequest represents a request to create a classroom
type CreateClassroomRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"Physics 101"`
	Subject string `json:"subject" binding:"omitempty,max=100" example:"physics"`

	// Teacher is the owning teacher's identifier, exactly one.
	Teacher string `json:"teacher" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`

	// Students enrolled at creation. May be empty.
	Students []string `json:"students" binding:"omitempty,dive,objectid"`
}

// ToModel converts the validated request into a classroom document. The
// identifier fields have already passed the objectid rule, so hex parsing
// cannot fail here.
func (r *CreateClassroomRequest) ToModel() *models.Classroom {
	teacherID, _ := primitive.ObjectIDFromHex(r.Teacher)
	students := make([]primitive.ObjectID, 0, len(r.Students))
	for _, s := range r.Students {
		id, _ := primitive.ObjectIDFromHex(s)
		students = append(students, id)
	}
	return &models.Classroom{
		Name:        r.Name,
		Subject:     r.Subject,
		Teacher:     teacherID,
		Students:    students,
		QuizHistory: []primitive.ObjectID{},
	}
}
