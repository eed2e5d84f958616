package repository

import (
	"aviengine/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepo interface {
	Save(ctx context.Context, report *model.SessionReport) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.SessionReport, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection("reports"),
	}
}

type storedReport struct {
	SessionID string              `bson:"_id"`
	Report    model.SessionReport `bson:"report"`
}

func (r *reportRepo) Save(ctx context.Context, report *model.SessionReport) error {
	doc := storedReport{
		SessionID: report.Session.ID,
		Report:    *report,
	}
	// Regenerating a report replaces the previous snapshot
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": doc.SessionID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *reportRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.SessionReport, error) {
	var doc storedReport
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // No report yet
		}
		return nil, err
	}
	return &doc.Report, nil
}
