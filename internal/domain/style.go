package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Style is a workout style shown in browse filters.
// Deactivated styles are hidden from the dynamic style list but keep their
// documents; workouts referencing them stay queryable directly.
type Style struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Slug   string             `bson:"slug" json:"slug"`
	Order  int                `bson:"order" json:"order"`
	Active bool               `bson:"active" json:"active"`
}
