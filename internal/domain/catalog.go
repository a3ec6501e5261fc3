package domain

// Canonical lists for the public site. Levels and body parts are static;
// styles live in the database and fall back to DefaultWorkoutStyles when the
// styles collection is empty.

var WorkoutLevels = []string{"Beginner", "Intermediate", "Advanced"}

// DefaultWorkoutStyles seeds the styles collection on first startup.
var DefaultWorkoutStyles = []string{
	"BodyWeight", "Barbell", "Dumbbell", "Kettlebell", "Resistance Bands",
	"Machines", "Calisthenics", "Cardio/Endurance",
	"Plyometric/Explosive", "CrossFit/Functional", "Yoga/Mobility",
}

var BodyPartsMaster = []string{
	"Chest", "Back", "Lats", "Shoulders", "Arms", "Biceps", "Triceps", "Forearms",
	"Core", "Abs", "Obliques", "Lower Back", "Upper Back",
	"Legs", "Quads", "Hamstrings", "Glutes", "Calves", "Hips",
	"Full Body", "Neck",
}

// Curated landing-page picks, independent of what exists in the store.
var (
	FeaturedBodyParts = []string{"Chest", "Back", "Legs"}
	FeaturedStyles    = []string{"BodyWeight", "Barbell", "Machines"}
)

// QuickOption is a shortcut link rendered on every page.
type QuickOption struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

var QuickOptions = []QuickOption{
	{Label: "Favorites", URL: "/workouts?filter=favorites"},
	{Label: "Recently Added", URL: "/workouts?filter=recent"},
	{Label: "Top Rated", URL: "/workouts?filter=top"},
}
