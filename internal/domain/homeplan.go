package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HomePlan is the legacy flat predecessor of Program, kept for backward
// compatibility. It has no weeks or items, just a CTA link.
type HomePlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	DurationLabel string             `bson:"duration_label,omitempty" json:"durationLabel,omitempty"`
	Summary       string             `bson:"summary,omitempty" json:"summary,omitempty"`
	CoverImage    string             `bson:"cover_image,omitempty" json:"coverImage,omitempty"`
	CTALabel      string             `bson:"cta_label,omitempty" json:"ctaLabel,omitempty"`
	CTAURL        string             `bson:"cta_url,omitempty" json:"ctaUrl,omitempty"`
	Order         int                `bson:"order" json:"order"`
	Active        bool               `bson:"active" json:"active"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
