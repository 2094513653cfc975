package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"phonekart-backend/internal/models"
)

type MongoContactStore struct {
	coll *mongo.Collection
}

func (s *MongoContactStore) FindByUser(ctx context.Context, userID string) ([]models.Contact, error) {
	oid, err := objectID(userID)
	if err != nil {
		return nil, err
	}
	cur, err := s.coll.Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		return nil, err
	}
	contacts := []models.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *MongoContactStore) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var contact models.Contact
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&contact); err != nil {
		return nil, translate(err)
	}
	return &contact, nil
}

func (s *MongoContactStore) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	res, err := s.coll.InsertOne(ctx, contact)
	if err != nil {
		return nil, err
	}
	contact.ID = res.InsertedID.(primitive.ObjectID)
	return contact, nil
}

func (s *MongoContactStore) Update(ctx context.Context, id string, name, number string) (*models.Contact, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != "" {
		set["name"] = name
	}
	if number != "" {
		set["number"] = number
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *MongoContactStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
