package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a multi-week training program. It exclusively owns its weeks,
// which in turn own their items; deleting a program cascades through both.
type Program struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	DurationLabel string             `bson:"duration_label,omitempty" json:"durationLabel,omitempty"`
	Summary       string             `bson:"summary,omitempty" json:"summary,omitempty"`
	CoverImage    string             `bson:"cover_image,omitempty" json:"coverImage,omitempty"`
	Order         int                `bson:"order" json:"order"`
	Active        bool               `bson:"active" json:"active"`
	ShowOnHome    bool               `bson:"show_on_home" json:"showOnHome"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// ProgramWeek belongs to exactly one Program.
type ProgramWeek struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID  primitive.ObjectID `bson:"program_id" json:"programId"`
	WeekNumber int                `bson:"week_number" json:"weekNumber"`
	Order      int                `bson:"order" json:"order"`
}

// ProgramItem belongs to exactly one ProgramWeek. WorkoutID loosely references
// a Workout and is not cleaned up when that workout is deleted.
type ProgramItem struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	WeekID    primitive.ObjectID  `bson:"week_id" json:"weekId"`
	WorkoutID *primitive.ObjectID `bson:"workout_id,omitempty" json:"workoutId,omitempty"`
	Order     int                 `bson:"order" json:"order"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
}
