package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"phonekart-backend/internal/models"
)

type MongoProductStore struct {
	coll *mongo.Collection
}

func (s *MongoProductStore) FindByBrand(ctx context.Context, brand string, skip, limit int64) ([]models.Product, error) {
	return s.findPage(ctx, bson.M{"brand": brand}, skip, limit)
}

func (s *MongoProductStore) CountByBrand(ctx context.Context, brand string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"brand": brand})
}

func (s *MongoProductStore) FindByBrandAndModel(ctx context.Context, brand, model string, skip, limit int64) ([]models.Product, error) {
	return s.findPage(ctx, bson.M{"brand": brand, "model": model}, skip, limit)
}

func (s *MongoProductStore) CountByBrandAndModel(ctx context.Context, brand, model string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"brand": brand, "model": model})
}

func (s *MongoProductStore) FindByLink(ctx context.Context, link string) (*models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"product_link": link}).Decode(&product)
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *MongoProductStore) FindByLinks(ctx context.Context, links []string) ([]models.Product, error) {
	return s.findAll(ctx, bson.M{"product_link": bson.M{"$in": links}})
}

func (s *MongoProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.findAll(ctx, bson.M{})
}

func (s *MongoProductStore) findPage(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProductStore) findAll(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
