package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"student-tracker/internal/domain"
)

// StudyPlanRepository define el contrato de persistencia para planes
// de estudio.
type StudyPlanRepository interface {
	Insert(ctx context.Context, plan domain.StudyPlan) (primitive.ObjectID, error)
	OwnerOf(ctx context.Context, id primitive.ObjectID) (string, error)
	ListByOwner(ctx context.Context, email string) ([]domain.StudyPlan, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.StudyPlanPatch) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoStudyPlanRepository implementa StudyPlanRepository.
type MongoStudyPlanRepository struct {
	coll *mongo.Collection
}

func NewMongoStudyPlanRepository(db *mongo.Database) *MongoStudyPlanRepository {
	return &MongoStudyPlanRepository{coll: db.Collection("plansCollection")}
}

func (r *MongoStudyPlanRepository) Insert(ctx context.Context, plan domain.StudyPlan) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *MongoStudyPlanRepository) OwnerOf(ctx context.Context, id primitive.ObjectID) (string, error) {
	return ownerOf(ctx, r.coll, id)
}

func (r *MongoStudyPlanRepository) ListByOwner(ctx context.Context, email string) ([]domain.StudyPlan, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userEmail", Value: email}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []domain.StudyPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *MongoStudyPlanRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.StudyPlanPatch) (int64, error) {
	set := bson.M{}
	if patch.Topic != nil {
		set["topic"] = *patch.Topic
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
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

func (r *MongoStudyPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
