package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	TeacherRepository   *TeacherRepository
	StudentRepository   *StudentRepository
	ClassroomRepository *ClassroomRepository
	QuizRepository      *QuizRepository
	OutboxRepository    *OutboxRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		TeacherRepository:   NewTeacherRepository(db),
		StudentRepository:   NewStudentRepository(db),
		ClassroomRepository: NewClassroomRepository(db),
		QuizRepository:      NewQuizRepository(db),
		OutboxRepository:    NewOutboxRepository(db),
	}
}
