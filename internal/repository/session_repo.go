package repository

import (
	"aviengine/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepo interface {
	Save(ctx context.Context, state *model.SessionState) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.SessionState, error)
	ListEnded(ctx context.Context, limit int64) ([]*model.SessionState, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Save(ctx context.Context, state *model.SessionState) error {
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"sessionId": state.SessionID},
		state,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *sessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.SessionState, error) {
	var state model.SessionState
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&state)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Session not found
		}
		return nil, err
	}
	return &state, nil
}

func (r *sessionRepo) ListEnded(ctx context.Context, limit int64) ([]*model.SessionState, error) {
	opts := options.Find().
		SetSort(bson.M{"endedAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"status": model.SessionEnded}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var states []*model.SessionState
	if err = cursor.All(ctx, &states); err != nil {
		return nil, err
	}
	return states, nil
}
