package mongo

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobprep/interview/internal/models"
	"jobprep/interview/internal/repositories"
)

// QuestionRepo wraps the question bank collection.
type QuestionRepo struct{ col *mongo.Collection }

// NewQuestionRepo connects to the collection and ensures the compound
// pool index the selector queries against.
func NewQuestionRepo(c *Client) (*QuestionRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	colName := os.Getenv("QUESTIONS_COLLECTION")
	if colName == "" {
		colName = "interview_questions"
	}

	col := db.Collection(colName)
	r := &QuestionRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "role", Value: 1}, {Key: "level", Value: 1}, {Key: "category", Value: 1}},
	})

	return r, nil
}

func poolQuery(filter repositories.PoolFilter) bson.M {
	q := bson.M{
		"role":     filter.Role,
		"level":    filter.Level,
		"category": filter.Category,
	}
	if filter.ActiveOnly {
		q["is_active"] = true
	}
	return q
}

func (r *QuestionRepo) Count(ctx context.Context, filter repositories.PoolFilter) (int64, error) {
	return r.col.CountDocuments(ctx, poolQuery(filter))
}

func (r *QuestionRepo) Find(ctx context.Context, filter repositories.PoolFilter, limit int64) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, poolQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Question
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindLeastUsed orders by usage count then last-used ascending. Mongo
// sorts missing/null values first, so never-used questions lead.
func (r *QuestionRepo) FindLeastUsed(ctx context.Context, filter repositories.PoolFilter, limit, offset int64, exclude []primitive.ObjectID) ([]models.Question, error) {
	query := poolQuery(filter)
	if len(exclude) > 0 {
		query["_id"] = bson.M{"$nin": exclude}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "usage_count", Value: 1}, {Key: "last_used", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Question
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *QuestionRepo) InsertMany(ctx context.Context, questions []models.Question) ([]models.Question, error) {
	if len(questions) == 0 {
		return questions, nil
	}

	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}

	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(questions) {
			questions[i].ID = oid
		}
	}
	return questions, nil
}

func (r *QuestionRepo) IncrementUsage(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	now := time.Now().UTC()
	_, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{
			"$inc": bson.M{"usage_count": 1},
			"$set": bson.M{"last_used": now, "updated_at": now},
		})
	return err
}

func (r *QuestionRepo) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("question not found")
	}
	return nil
}

func (r *QuestionRepo) DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{
			"is_active":   true,
			"usage_count": 0,
			"created_at":  bson.M{"$lt": cutoff},
		},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
