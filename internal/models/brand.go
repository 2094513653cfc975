package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Brand groups the model names sold under one brand. One document per brand,
// though the source data does not guarantee brand names are unique across
// documents.
type Brand struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BrandName  string             `bson:"brandName" json:"brandName"`
	ModelNames []string           `bson:"modelName" json:"modelName"`
}

// BrandModelPair is one row of the brand/model listing.
type BrandModelPair struct {
	BrandName string `json:"brandName"`
	ModelName string `json:"modelName"`
}
