package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"phonekart-backend/internal/models"
)

type MongoOrderStore struct {
	coll *mongo.Collection
}

func (s *MongoOrderStore) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return order, nil
}
