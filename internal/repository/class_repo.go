package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"student-tracker/internal/domain"
)

// ClassRepository define el contrato de persistencia para clases.
type ClassRepository interface {
	Insert(ctx context.Context, class domain.Class) (primitive.ObjectID, error)
	OwnerOf(ctx context.Context, id primitive.ObjectID) (string, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Class, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ClassPatch) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoClassRepository implementa ClassRepository sobre una colección.
type MongoClassRepository struct {
	coll *mongo.Collection
}

func NewMongoClassRepository(db *mongo.Database) *MongoClassRepository {
	return &MongoClassRepository{coll: db.Collection("classesCollection")}
}

func (r *MongoClassRepository) Insert(ctx context.Context, class domain.Class) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, class)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *MongoClassRepository) OwnerOf(ctx context.Context, id primitive.ObjectID) (string, error) {
	return ownerOf(ctx, r.coll, id)
}

func (r *MongoClassRepository) ListByOwner(ctx context.Context, email string) ([]domain.Class, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userEmail", Value: email}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []domain.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *MongoClassRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.ClassPatch) (int64, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Subject != nil {
		set["subject"] = *patch.Subject
	}
	if patch.Instructor != nil {
		set["instructor"] = *patch.Instructor
	}
	if patch.Schedule != nil {
		set["schedule"] = *patch.Schedule
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

func (r *MongoClassRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
