package mongo

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobprep/interview/internal/models"
)

// SessionRepo wraps the interview sessions collection.
type SessionRepo struct{ col *mongo.Collection }

func NewSessionRepo(c *Client) (*SessionRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	colName := os.Getenv("SESSIONS_COLLECTION")
	if colName == "" {
		colName = "interview_sessions"
	}

	col := db.Collection(colName)
	r := &SessionRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "created_at", Value: -1}},
	})

	return r, nil
}

func (r *SessionRepo) Create(ctx context.Context, session *models.InterviewSession) (*models.InterviewSession, error) {
	now := time.Now().UTC()
	session.CreatedAt, session.UpdatedAt = now, now

	res, err := r.col.InsertOne(ctx, session)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid
	}
	return session, nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) ListByUser(ctx context.Context, user string) ([]models.InterviewSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.InterviewSession
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SessionRepo) Update(ctx context.Context, session *models.InterviewSession) error {
	session.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
