package model

// GradeLevels maps education-level keys to display names, from coarsest
// primary band up to competitive-exam preparation.
var GradeLevels = map[string]string{
	"beginner":     "Class 1-5 (Primary)",
	"middle":       "Class 6-8 (Middle School)",
	"intermediate": "Class 9-10 (High School)",
	"advanced":     "Class 11-12 (Senior Secondary)",
	"competitive":  "JEE/NEET (Competitive)",
	"college":      "College/University",
}

// Boards maps board keys to display names.
var Boards = map[string]string{
	"cbse":  "CBSE (Central Board)",
	"icse":  "ICSE (Indian Certificate)",
	"state": "State Board",
	"ncert": "NCERT (General)",
}

// ValidGradeLevel reports whether level is a known education level.
func ValidGradeLevel(level string) bool {
	_, ok := GradeLevels[level]
	return ok
}

// ValidBoard reports whether board is a known board/curriculum.
func ValidBoard(board string) bool {
	_, ok := Boards[board]
	return ok
}
