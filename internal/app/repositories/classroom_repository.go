package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
)

// ClassroomRepository handles document operations for the 'classrooms' collection
type ClassroomRepository struct {
	collection *mongo.Collection
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *mongo.Database) *ClassroomRepository {
	return &ClassroomRepository{
		collection: db.Collection("classrooms"),
	}
}

// Create inserts a new classroom document and fills in its generated id.
// QuizHistory always starts empty regardless of the input document.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	if classroom.ID.IsZero() {
		classroom.ID = primitive.NewObjectID()
	}
	if classroom.Students == nil {
		classroom.Students = []primitive.ObjectID{}
	}
	classroom.QuizHistory = []primitive.ObjectID{}
	if classroom.CreatedAt.IsZero() {
		classroom.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, classroom); err != nil {
		return apperrors.NewDatabaseError("error creating classroom", err)
	}
	return nil
}

// GetByID retrieves a classroom by id
func (r *ClassroomRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Classroom, error) {
	var classroom models.Classroom
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&classroom)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, apperrors.NewDatabaseError("error retrieving classroom", err)
	}
	return &classroom, nil
}

// GetAll retrieves all classrooms
func (r *ClassroomRepository) GetAll(ctx context.Context) ([]*models.Classroom, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewDatabaseError("error retrieving classrooms", err)
	}
	defer cursor.Close(ctx)

	var classrooms []*models.Classroom
	if err := cursor.All(ctx, &classrooms); err != nil {
		return nil, apperrors.NewDatabaseError("error decoding classrooms", err)
	}
	return classrooms, nil
}

// Delete removes a classroom by id and returns the removed document.
// Teacher and student back-references are not cleaned up.
func (r *ClassroomRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Classroom, error) {
	var classroom models.Classroom
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&classroom)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, apperrors.NewDatabaseError("error deleting classroom", err)
	}
	return &classroom, nil
}

// AppendQuiz atomically appends a quiz id to the classroom's quiz history
func (r *ClassroomRepository) AppendQuiz(ctx context.Context, classroomID, quizID primitive.ObjectID) error {
	res, err := r.collection.UpdateByID(ctx, classroomID, bson.M{
		"$push": bson.M{"quizHistory": quizID},
	})
	if err != nil {
		return apperrors.NewDatabaseError("error appending quiz to classroom", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrClassroomNotFound
	}
	return nil
}
