package types

// Category is the fixed taxonomy a life keyword is filed under.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryNutrition    Category = "nutrition"
	CategorySleep        Category = "sleep"
	CategorySocial       Category = "social"
	CategoryWork         Category = "work"
	CategoryHobby        Category = "hobby"
	CategoryTravel       Category = "travel"
	CategoryEmotion      Category = "emotion"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"

	// CategoryGeneral is the fallback when no pattern matches.
	CategoryGeneral Category = "general"
)

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}
