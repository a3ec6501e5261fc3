package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recipe is a read-only link on the recipes page. Rows come from seeding;
// there is no admin CRUD for recipes.
type Recipe struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	URL  string             `bson:"url" json:"url"`
}
