package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LinkPrefix is the path prefix carried by every Product.ProductLink in the
// scraped catalog data. Public product identifiers are the link with this
// prefix stripped.
const LinkPrefix = "/p/"

// Product is a catalog document. Price fields are strings because the data
// is scraped as-is and served back untouched.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Brand           string             `bson:"brand" json:"brand"`
	Model           string             `bson:"model" json:"model"`
	ProductName     string             `bson:"product_name" json:"product_name"`
	DiscountedPrice string             `bson:"discounted_price" json:"discounted_price"`
	ActualPrice     string             `bson:"actual_price" json:"actual_price"`
	LoyaltyPrice    string             `bson:"loyalty_price" json:"loyalty_price"`
	ImageURL        string             `bson:"image_url" json:"image_url"`
	ProductLink     string             `bson:"product_link" json:"product_link"`
}

// ProductLinkFor rebuilds the stored link for a public product identifier.
func ProductLinkFor(productID string) string {
	return LinkPrefix + productID
}

// ProductIDFromLink strips the link prefix, yielding the public identifier.
func ProductIDFromLink(link string) string {
	return strings.TrimPrefix(link, LinkPrefix)
}
