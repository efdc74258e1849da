package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ampta/resumecraft-backend/internal/models"
)

const resumesCollection = "resumes"

type MongoResumeRepository struct {
	col *mongo.Collection
}

func NewMongoResumeRepository(db *mongo.Database) *MongoResumeRepository {
	return &MongoResumeRepository{col: db.Collection(resumesCollection)}
}

// EnsureResumeIndexes creates the owner listing index.
func EnsureResumeIndexes(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(resumesCollection)
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "updated_at", Value: -1},
		},
		Options: options.Index().SetName("idx_user_updated"),
	})
	return err
}

func (r *MongoResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	now := time.Now().UTC()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, resume)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		resume.ID = oid
	}
	return nil
}

func (r *MongoResumeRepository) FindByUserID(ctx context.Context, userID string) ([]models.Resume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	resumes := []models.Resume{}
	if err := cur.All(ctx, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *MongoResumeRepository) FindByUserAndID(ctx context.Context, userID, id string) (*models.Resume, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var resume models.Resume
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&resume)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *MongoResumeRepository) Update(ctx context.Context, resume *models.Resume) error {
	resume.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": resume.ID, "user_id": resume.UserID}, resume)
	return err
}

func (r *MongoResumeRepository) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	return err
}
