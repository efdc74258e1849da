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

const paymentsCollection = "payments"

type MongoPaymentRepository struct {
	col *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{col: db.Collection(paymentsCollection)}
}

// EnsurePaymentIndexes creates the order id and user history indexes.
func EnsurePaymentIndexes(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(paymentsCollection)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetName("idx_order_id_unique").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_user_created"),
		},
	}
	for _, m := range indexes {
		if _, err := col.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *MongoPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return nil
}

func (r *MongoPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"order_id": orderID})
}

func (r *MongoPaymentRepository) FindByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"payment_id": paymentID})
}

func (r *MongoPaymentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(ctx, bson.M{"user_id": userID}, opts)
}

func (r *MongoPaymentRepository) FindByStatus(ctx context.Context, status string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(ctx, bson.M{"status": status}, opts)
}

// MarkPaid performs the single conditional state transition of the payment
// lifecycle. The filter pins the current status to "created", so concurrent
// or duplicate callbacks for the same order can win this update at most once.
func (r *MongoPaymentRepository) MarkPaid(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"order_id": orderID, "status": models.PaymentStatusCreated},
		bson.M{"$set": bson.M{
			"status":     models.PaymentStatusPaid,
			"payment_id": paymentID,
			"signature":  signature,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *MongoPaymentRepository) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	var payment models.Payment
	err := r.col.FindOne(ctx, filter).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *MongoPaymentRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Payment, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
