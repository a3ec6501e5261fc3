package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single browsable workout page.
// Slug is unique across the collection and derived from the name when the
// admin leaves it blank. BodyPart is the legacy single value kept alongside
// the BodyParts list; BodyParts is the authoritative superset.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Level       string             `bson:"level,omitempty" json:"level,omitempty"` // Beginner | Intermediate | Advanced
	BodyPart    string             `bson:"body_part,omitempty" json:"bodyPart,omitempty"`
	BodyParts   []string           `bson:"body_parts,omitempty" json:"bodyParts,omitempty"`
	Style       string             `bson:"style,omitempty" json:"style,omitempty"` // references Style.Name
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"` // ordered gallery URLs
	MuscleImage string             `bson:"muscle_image,omitempty" json:"muscleImage,omitempty"`
	Info        string             `bson:"info,omitempty" json:"info,omitempty"`
	Tips        []string           `bson:"tips,omitempty" json:"tips,omitempty"`
	YouTubeID   string             `bson:"youtube_id,omitempty" json:"youtubeId,omitempty"`
	IsFavorite  bool               `bson:"is_favorite" json:"isFavorite"`
	Rating      float64            `bson:"rating" json:"rating"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"` // set once on insert, never updated
}
