package models

// DefaultCatalog returns the fixed ten-lesson catalog used by the seed
// endpoint and the seed script. IDs are left zero so the store assigns them.
func DefaultCatalog() []Lesson {
	return []Lesson{
		{Topic: "Math", Location: "Hendon", Price: 100, Space: 5, Image: "math.png"},
		{Topic: "English", Location: "Colindale", Price: 80, Space: 5, Image: "english.png"},
		{Topic: "Science", Location: "Brent Cross", Price: 90, Space: 5, Image: "science.png"},
		{Topic: "History", Location: "Golders Green", Price: 95, Space: 5, Image: "history.png"},
		{Topic: "Geography", Location: "Hendon", Price: 85, Space: 5, Image: "geography.png"},
		{Topic: "Art", Location: "Colindale", Price: 70, Space: 5, Image: "art.png"},
		{Topic: "Music", Location: "Brent Cross", Price: 110, Space: 5, Image: "music.png"},
		{Topic: "CS", Location: "Golders Green", Price: 120, Space: 5, Image: "cs.png"},
		{Topic: "Physics", Location: "Hendon", Price: 105, Space: 5, Image: "physics.png"},
		{Topic: "Chemistry", Location: "Colindale", Price: 98, Space: 5, Image: "chemistry.png"},
	}
}
