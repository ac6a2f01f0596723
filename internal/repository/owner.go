package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ownerOf lee solo el campo userEmail de un documento. Devuelve
// mongo.ErrNoDocuments si el documento no existe.
func ownerOf(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (string, error) {
	var doc struct {
		UserEmail string `bson:"userEmail"`
	}
	opts := options.FindOne().SetProjection(bson.D{{Key: "userEmail", Value: 1}})
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}, opts).Decode(&doc)
	if err != nil {
		return "", err
	}
	return doc.UserEmail, nil
}

// matchOnly cuenta si el documento sigue existiendo sin modificarlo.
// Se usa cuando un update no trae campos que escribir.
func matchOnly(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (int64, error) {
	return coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
}
