package theme

import (
	"strings"

	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// categoryPattern pairs a category with the keyword fragments that map an
// activity label onto it. The table is data, not code branches, so adding
// a category is a one-entry change.
type categoryPattern struct {
	Category types.Category
	Patterns []string
}

// categoryPatterns is evaluated in order; the first matching entry wins.
// More specific categories come before broader ones (fitness before
// health, sleep before health).
var categoryPatterns = []categoryPattern{
	{types.CategoryFitness, []string{"gym", "workout", "run", "jog", "badminton", "tennis", "soccer", "football", "basketball", "swim", "cycling", "bike", "yoga", "hike", "climb", "exercise", "training"}},
	{types.CategorySleep, []string{"sleep", "nap", "bedtime", "insomnia", "rest"}},
	{types.CategoryNutrition, []string{"meal", "lunch", "dinner", "breakfast", "snack", "cook", "recipe", "diet", "restaurant", "cafe", "coffee", "eat"}},
	{types.CategoryHealth, []string{"doctor", "hospital", "clinic", "medicine", "therapy", "checkup", "symptom", "blood", "heart rate", "steps", "health"}},
	{types.CategorySocial, []string{"friend", "family", "party", "gather", "meetup", "date", "wedding", "visit", "chat", "call with"}},
	{types.CategoryWork, []string{"work", "meeting", "office", "project", "deadline", "client", "interview", "presentation", "standup", "shift"}},
	{types.CategoryTravel, []string{"travel", "trip", "flight", "airport", "hotel", "vacation", "tour", "drive to", "station", "train"}},
	{types.CategoryLearning, []string{"study", "learn", "course", "lecture", "book", "read", "class", "tutorial", "exam", "language"}},
	{types.CategoryProductivity, []string{"todo", "plan", "organize", "schedule", "review", "journal", "budget", "errand", "chore"}},
	{types.CategoryEmotion, []string{"happy", "sad", "anxious", "stress", "grateful", "angry", "mood", "feeling", "excited", "tired"}},
	{types.CategoryHobby, []string{"game", "gaming", "music", "guitar", "piano", "paint", "draw", "photo", "movie", "garden", "knit", "craft", "fishing"}},
}

// InferCategory maps an activity label to a category tag by
// case-insensitive substring matching against the pattern table. Unmatched
// and empty labels fall back to general. Pure and stable.
func InferCategory(activityLabel string) types.Category {
	label := strings.ToLower(activityLabel)
	if label == "" {
		return types.CategoryGeneral
	}

	for _, entry := range categoryPatterns {
		for _, p := range entry.Patterns {
			if strings.Contains(label, p) {
				return entry.Category
			}
		}
	}

	return types.CategoryGeneral
}
