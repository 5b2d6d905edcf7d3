package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
)

// TeacherRepository handles document operations for the 'teachers' collection
type TeacherRepository struct {
	collection *mongo.Collection
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{
		collection: db.Collection("teachers"),
	}
}

// Create inserts a new teacher document and fills in its generated id
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID.IsZero() {
		teacher.ID = primitive.NewObjectID()
	}
	if teacher.Classrooms == nil {
		teacher.Classrooms = []primitive.ObjectID{}
	}

	if _, err := r.collection.InsertOne(ctx, teacher); err != nil {
		return apperrors.NewDatabaseError("error creating teacher", err)
	}
	return nil
}

// GetByID retrieves a teacher by id
func (r *TeacherRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, apperrors.NewDatabaseError("error retrieving teacher", err)
	}
	return &teacher, nil
}

// GetAll retrieves all teachers
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewDatabaseError("error retrieving teachers", err)
	}
	defer cursor.Close(ctx)

	var teachers []*models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, apperrors.NewDatabaseError("error decoding teachers", err)
	}
	return teachers, nil
}

// Delete removes a teacher by id and returns the removed document. There is
// no cascading cleanup: classroom documents referencing the teacher keep
// their reference.
func (r *TeacherRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, apperrors.NewDatabaseError("error deleting teacher", err)
	}
	return &teacher, nil
}

// AppendClassroom atomically appends a classroom id to the teacher's
// back-reference list. The $push runs server-side as a single document
// update, so concurrent appends to the same teacher cannot lose each other.
// Duplicates are preserved: each successful classroom creation is a distinct
// link event.
func (r *TeacherRepository) AppendClassroom(ctx context.Context, teacherID, classroomID primitive.ObjectID) error {
	res, err := r.collection.UpdateByID(ctx, teacherID, bson.M{
		"$push": bson.M{"classrooms": classroomID},
	})
	if err != nil {
		return apperrors.NewDatabaseError("error appending classroom to teacher", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}
