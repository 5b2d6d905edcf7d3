package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
)

// StudentRepository is the persistence surface the student service needs
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
}

// StudentService handles student operations, mirroring TeacherService
type StudentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudent persists a validated student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// GetStudentByID retrieves a student by id
func (s *StudentService) GetStudentByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// DeleteStudent removes a student and returns the removed document.
// Classroom rosters referencing the student are not touched.
func (s *StudentService) DeleteStudent(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	return s.studentRepo.Delete(ctx, id)
}
