package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"phonekart-backend/internal/models"
)

type MongoBrandStore struct {
	coll *mongo.Collection
}

func (s *MongoBrandStore) FindAll(ctx context.Context) ([]models.Brand, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var brands []models.Brand
	if err := cur.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}
