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

// QuizRepository handles document operations for the 'quizzes' collection
type QuizRepository struct {
	collection *mongo.Collection
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{
		collection: db.Collection("quizzes"),
	}
}

// Create inserts a new quiz document and fills in its generated id
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, quiz); err != nil {
		return apperrors.NewDatabaseError("error creating quiz", err)
	}
	return nil
}

// GetByID retrieves a quiz by id
func (r *QuizRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, apperrors.NewDatabaseError("error retrieving quiz", err)
	}
	return &quiz, nil
}

// GetByIDs retrieves quizzes for the given ids, returned in the order the
// ids were supplied. Ids that resolve to no document are skipped; a history
// entry pointing at a deleted quiz does not fail the whole read.
func (r *QuizRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Quiz, error) {
	if len(ids) == 0 {
		return []*models.Quiz{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperrors.NewDatabaseError("error retrieving quizzes", err)
	}
	defer cursor.Close(ctx)

	var found []*models.Quiz
	if err := cursor.All(ctx, &found); err != nil {
		return nil, apperrors.NewDatabaseError("error decoding quizzes", err)
	}

	byID := make(map[primitive.ObjectID]*models.Quiz, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}

	quizzes := make([]*models.Quiz, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			quizzes = append(quizzes, q)
		}
	}
	return quizzes, nil
}
