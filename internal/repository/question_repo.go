package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"student-tracker/internal/domain"
)

// QuestionRepository maneja dos colecciones: el banco público de
// preguntas y las preguntas enviadas por usuarios, que sí tienen dueño.
type QuestionRepository interface {
	ListBank(ctx context.Context, category string) ([]domain.Question, error)
	InsertSubmitted(ctx context.Context, q domain.Question) (primitive.ObjectID, error)
	SubmittedOwnerOf(ctx context.Context, id primitive.ObjectID) (string, error)
	ListSubmittedByOwner(ctx context.Context, email string) ([]domain.Question, error)
	DeleteSubmitted(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoQuestionRepository implementa QuestionRepository.
type MongoQuestionRepository struct {
	bank      *mongo.Collection
	submitted *mongo.Collection
}

func NewMongoQuestionRepository(db *mongo.Database) *MongoQuestionRepository {
	return &MongoQuestionRepository{
		bank:      db.Collection("questionsCollection"),
		submitted: db.Collection("submittedQuestionsCollection"),
	}
}

func (r *MongoQuestionRepository) ListBank(ctx context.Context, category string) ([]domain.Question, error) {
	filter := bson.D{}
	if category != "" {
		filter = bson.D{{Key: "category", Value: category}}
	}
	cursor, err := r.bank.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []domain.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *MongoQuestionRepository) InsertSubmitted(ctx context.Context, q domain.Question) (primitive.ObjectID, error) {
	res, err := r.submitted.InsertOne(ctx, q)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *MongoQuestionRepository) SubmittedOwnerOf(ctx context.Context, id primitive.ObjectID) (string, error) {
	return ownerOf(ctx, r.submitted, id)
}

func (r *MongoQuestionRepository) ListSubmittedByOwner(ctx context.Context, email string) ([]domain.Question, error) {
	cursor, err := r.submitted.Find(ctx, bson.D{{Key: "userEmail", Value: email}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []domain.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *MongoQuestionRepository) DeleteSubmitted(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.submitted.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
