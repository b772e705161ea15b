package constants

// DefaultCategory is a preset seeded for owners with no categories.
type DefaultCategory struct {
	Name  string
	Emoji string
	Color string
}

// DefaultCategories are created by the one-time seeding operation.
var DefaultCategories = []DefaultCategory{
	{Name: "Clean Home", Emoji: "🏠", Color: "#E8D5FF"},
	{Name: "Self-Care", Emoji: "💆", Color: "#FFD5E8"},
	{Name: "Work", Emoji: "💼", Color: "#D5E8FF"},
}
