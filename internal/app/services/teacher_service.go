package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
)

// TeacherRepository is the persistence surface the teacher service needs
type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error)
}

// TeacherService handles teacher operations. Teacher creation carries no
// cascade; back-references onto teachers are written by the link maintainer
// when classrooms are created.
type TeacherService struct {
	teacherRepo TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo TeacherRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo}
}

// CreateTeacher persists a validated teacher
func (s *TeacherService) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	return s.teacherRepo.Create(ctx, teacher)
}

// GetTeacherByID retrieves a teacher by id
func (s *TeacherService) GetTeacherByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// GetAllTeachers retrieves all teachers
func (s *TeacherService) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// DeleteTeacher removes a teacher and returns the removed document.
// Classrooms referencing the teacher are not touched.
func (s *TeacherService) DeleteTeacher(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	return s.teacherRepo.Delete(ctx, id)
}
