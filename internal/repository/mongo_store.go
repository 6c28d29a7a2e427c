package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exam-service/internal/models"
)

// MongoStore is the shared-database progress backend, one document per
// user upserted by user_id.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

type mongoRecord struct {
	UserID       string    `bson:"user_id"`
	Name         string    `bson:"name"`
	RegisteredAt time.Time `bson:"registered_at"`
	Guest        bool      `bson:"guest"`
	Progress     string    `bson:"progress"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection("progress"),
	}, nil
}

func (s *MongoStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var rec mongoRecord
	err := s.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.user(), nil
}

func (s *MongoStore) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	var rec mongoRecord
	err := s.col.FindOne(ctx, bson.M{"name": name}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.user(), nil
}

func (s *MongoStore) GetProgress(ctx context.Context, userID string) (*models.Progress, error) {
	var rec mongoRecord
	err := s.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	var p models.Progress
	if err := json.Unmarshal([]byte(rec.Progress), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) SaveRecord(ctx context.Context, rec *models.UserRecord) error {
	data, err := json.Marshal(rec.Progress)
	if err != nil {
		return err
	}
	doc := mongoRecord{
		UserID:       rec.User.UserID,
		Name:         rec.User.Name,
		RegisteredAt: rec.User.RegisteredAt,
		Guest:        rec.User.Guest,
		Progress:     string(data),
		UpdatedAt:    time.Now(),
	}
	_, err = s.col.ReplaceOne(ctx,
		bson.M{"user_id": rec.User.UserID},
		doc,
		options.Replace().SetUpsert(true))
	return err
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func (r *mongoRecord) user() *models.User {
	return &models.User{
		UserID:       r.UserID,
		Name:         r.Name,
		RegisteredAt: r.RegisteredAt,
		Guest:        r.Guest,
	}
}
