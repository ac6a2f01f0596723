package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"student-tracker/internal/domain"
)

// TransactionRepository define el contrato de persistencia para
// movimientos de presupuesto.
type TransactionRepository interface {
	Insert(ctx context.Context, tx domain.Transaction) (primitive.ObjectID, error)
	OwnerOf(ctx context.Context, id primitive.ObjectID) (string, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Transaction, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.TransactionPatch) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByOwner(ctx context.Context, email string) (int64, error)
}

// MongoTransactionRepository implementa TransactionRepository.
type MongoTransactionRepository struct {
	coll *mongo.Collection
}

func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{coll: db.Collection("transactionsCollection")}
}

func (r *MongoTransactionRepository) Insert(ctx context.Context, tx domain.Transaction) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, tx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *MongoTransactionRepository) OwnerOf(ctx context.Context, id primitive.ObjectID) (string, error) {
	return ownerOf(ctx, r.coll, id)
}

func (r *MongoTransactionRepository) ListByOwner(ctx context.Context, email string) ([]domain.Transaction, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userEmail", Value: email}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	txs := []domain.Transaction{}
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *MongoTransactionRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.TransactionPatch) (int64, error) {
	set := bson.M{}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Note != nil {
		set["note"] = *patch.Note
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if len(set) == 0 {
		return matchOnly(ctx, r.coll, id)
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoTransactionRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoTransactionRepository) DeleteByOwner(ctx context.Context, email string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "userEmail", Value: email}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
