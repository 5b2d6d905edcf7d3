package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
)

// ClassroomRepository is the persistence surface the classroom service needs
type ClassroomRepository interface {
	Create(ctx context.Context, classroom *models.Classroom) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Classroom, error)
	GetAll(ctx context.Context) ([]*models.Classroom, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Classroom, error)
	AppendQuiz(ctx context.Context, classroomID, quizID primitive.ObjectID) error
}

// QuizRepository is the persistence surface for quiz documents
type QuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Quiz, error)
}

// LinkEnqueuer hands freshly created classrooms to the link maintainer
type LinkEnqueuer interface {
	EnqueueClassroomLinks(classroom *models.Classroom)
}

// ClassroomService handles classroom operations, including the two
// cross-collection flows: the decoupled back-reference cascade on creation
// and the synchronous quiz attachment.
type ClassroomService struct {
	classroomRepo ClassroomRepository
	quizRepo      QuizRepository
	links         LinkEnqueuer
	logger        zerolog.Logger
}

// NewClassroomService creates a new classroom service instance
func NewClassroomService(classroomRepo ClassroomRepository, quizRepo QuizRepository, links LinkEnqueuer, lgr zerolog.Logger) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		quizRepo:      quizRepo,
		links:         links,
		logger:        lgr,
	}
}

// CreateClassroom persists a validated classroom and schedules the
// back-reference cascade. The operation is successful once the classroom
// document is durably written; teacher and student back-references are
// propagated as decoupled follow-up work and never gate or undo the
// creation.
func (s *ClassroomService) CreateClassroom(ctx context.Context, classroom *models.Classroom) error {
	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		return fmt.Errorf("error creating classroom: %w", err)
	}

	s.logger.Info().
		Str("classroomId", classroom.ID.Hex()).
		Str("teacherId", classroom.Teacher.Hex()).
		Int("students", len(classroom.Students)).
		Msg("Classroom created, scheduling back-reference links")
	s.links.EnqueueClassroomLinks(classroom)

	return nil
}

// GetClassroomByID retrieves a classroom by id
func (s *ClassroomService) GetClassroomByID(ctx context.Context, id primitive.ObjectID) (*models.Classroom, error) {
	return s.classroomRepo.GetByID(ctx, id)
}

// GetAllClassrooms retrieves all classrooms
func (s *ClassroomService) GetAllClassrooms(ctx context.Context) ([]*models.Classroom, error) {
	return s.classroomRepo.GetAll(ctx)
}

// DeleteClassroom removes a classroom and returns the removed document.
// Back-references held by teachers and students are left dangling; deletion
// is direct removal without cascade cleanup.
func (s *ClassroomService) DeleteClassroom(ctx context.Context, id primitive.ObjectID) (*models.Classroom, error) {
	return s.classroomRepo.Delete(ctx, id)
}

// AttachQuiz creates a quiz owned by a classroom and appends it to the
// classroom's history. Unlike the creation cascade this is synchronous and
// strictly ordered: the classroom lookup precedes the quiz write, so no quiz
// is ever created for a nonexistent classroom. If the history append fails
// the already-written quiz is orphaned; the caller sees the failure and the
// orphan is logged.
func (s *ClassroomService) AttachQuiz(ctx context.Context, classroomID primitive.ObjectID, quiz *models.Quiz) error {
	classroom, err := s.classroomRepo.GetByID(ctx, classroomID)
	if err != nil {
		return err
	}

	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return fmt.Errorf("error creating quiz for classroom %s: %w", classroomID.Hex(), err)
	}

	if err := s.classroomRepo.AppendQuiz(ctx, classroom.ID, quiz.ID); err != nil {
		s.logger.Error().
			Str("quizId", quiz.ID.Hex()).
			Str("classroomId", classroom.ID.Hex()).
			Msg("Quiz created but history append failed, quiz is orphaned")
		return fmt.Errorf("error appending quiz to classroom history: %w", err)
	}

	s.logger.Info().
		Str("quizId", quiz.ID.Hex()).
		Str("classroomId", classroom.ID.Hex()).
		Msg("Quiz attached to classroom")
	return nil
}

// GetQuizHistory returns the classroom's quizzes in attachment order
func (s *ClassroomService) GetQuizHistory(ctx context.Context, classroomID primitive.ObjectID) ([]*models.Quiz, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	return s.quizRepo.GetByIDs(ctx, classroom.QuizHistory)
}
