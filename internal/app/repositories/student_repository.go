package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
)

// StudentRepository handles document operations for the 'students' collection
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		collection: db.Collection("students"),
	}
}

// Create inserts a new student document and fills in its generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	if student.Classrooms == nil {
		student.Classrooms = []primitive.ObjectID{}
	}

	if _, err := r.collection.InsertOne(ctx, student); err != nil {
		return apperrors.NewDatabaseError("error creating student", err)
	}
	return nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.NewDatabaseError("error retrieving student", err)
	}
	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewDatabaseError("error retrieving students", err)
	}
	defer cursor.Close(ctx)

	var students []*models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, apperrors.NewDatabaseError("error decoding students", err)
	}
	return students, nil
}

// Delete removes a student by id and returns the removed document. No
// cascading cleanup of classroom rosters.
func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.NewDatabaseError("error deleting student", err)
	}
	return &student, nil
}

// AppendClassroom atomically appends a classroom id to the student's
// back-reference list, same contract as TeacherRepository.AppendClassroom.
func (r *StudentRepository) AppendClassroom(ctx context.Context, studentID, classroomID primitive.ObjectID) error {
	res, err := r.collection.UpdateByID(ctx, studentID, bson.M{
		"$push": bson.M{"classrooms": classroomID},
	})
	if err != nil {
		return apperrors.NewDatabaseError("error appending classroom to student", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
