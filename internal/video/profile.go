package video

import (
	"fmt"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

// EducationalKeywords are generic markers of instructional content,
// rewarded regardless of grade band.
var EducationalKeywords = []string{
	"explanation", "concept", "chapter", "lecture",
	"introduction", "easy", "tutorial", "learn", "basics",
	"solved", "solution", "question", "example", "proof",
}

// bandProfiles holds the per-band keyword and duration policy. Band keys
// match the education levels in model.GradeLevels; "college" shares the
// advanced profile.
var bandProfiles = map[string]model.GradeBandProfile{
	"competitive": {
		Keywords:        []string{"jee", "neet", "advanced", "competitive", "solved", "problem", "solution", "concept", "detailed"},
		AvoidKeywords:   []string{"kids", "easy", "simple", "basic", "primary", "class 1", "class 2", "class 3"},
		TrustedChannels: []string{"vedantu", "unacademy", "physics wallah", "competishun"},
		MinDuration:     600,
		MaxDuration:     1200,
	},
	"advanced": {
		Keywords:        []string{"class 11", "class 12", "ncert", "cbse", "icse", "board", "detailed", "solved", "important"},
		AvoidKeywords:   []string{"kids", "baby", "kindergarten", "nursery", "class 1", "class 2"},
		TrustedChannels: []string{"vedantu", "byju", "unacademy", "ncert", "khan academy"},
		MinDuration:     480,
		MaxDuration:     900,
	},
	"intermediate": {
		Keywords:        []string{"class 9", "class 10", "board exam", "ncert", "solved", "question", "important", "cbse"},
		AvoidKeywords:   []string{"kids", "baby", "elementary", "class 1", "class 2", "class 3"},
		TrustedChannels: []string{"vedantu", "byju", "unacademy", "meritnation"},
		MinDuration:     360,
		MaxDuration:     800,
	},
	"middle": {
		Keywords:        []string{"class 6", "class 7", "class 8", "middle school", "ncert", "explanation", "tutorial"},
		AvoidKeywords:   []string{"kids", "baby", "elementary", "kindergarten", "class 1", "class 2"},
		TrustedChannels: []string{"vedantu", "byju", "unacademy", "khan academy"},
		MinDuration:     300,
		MaxDuration:     720,
	},
	"beginner": {
		Keywords:        []string{"class 1", "class 2", "class 3", "class 4", "primary", "easy", "simple", "basics"},
		AvoidKeywords:   []string{"advanced", "jee", "neet", "competitive", "complex"},
		TrustedChannels: []string{"kids learning", "education", "simple learning"},
		MinDuration:     180,
		MaxDuration:     600,
	},
}

// boardKeywords add curriculum-specific terms to any band profile.
var boardKeywords = map[string][]string{
	"cbse":  {"cbse", "central board"},
	"icse":  {"icse", "indian certificate"},
	"state": {"state board"},
	"ncert": {"ncert"},
}

// ProfileFor returns the ranking profile for an education level and
// board. Unknown levels fall back to the beginner profile; "college"
// ranks with the advanced profile. The returned profile is a copy, safe
// for the caller to mutate.
func ProfileFor(level, board string) model.GradeBandProfile {
	key := level
	if key == "college" {
		key = "advanced"
	}
	base, ok := bandProfiles[key]
	if !ok {
		base = bandProfiles["beginner"]
	}

	p := model.GradeBandProfile{
		Keywords:        append([]string(nil), base.Keywords...),
		AvoidKeywords:   append([]string(nil), base.AvoidKeywords...),
		TrustedChannels: append([]string(nil), base.TrustedChannels...),
		MinDuration:     base.MinDuration,
		MaxDuration:     base.MaxDuration,
	}
	p.Keywords = append(p.Keywords, boardKeywords[board]...)
	return p
}

// SearchQuery builds a grade-appropriate video search query for a topic.
func SearchQuery(topic, level, board string) string {
	switch level {
	case "competitive":
		return fmt.Sprintf("%s JEE NEET solved problems detailed explanation", topic)
	case "advanced", "college":
		return fmt.Sprintf("%s class 11 12 %s NCERT detailed explanation solved", topic, board)
	case "intermediate":
		return fmt.Sprintf("%s class 9 10 %s board exam solved examples", topic, board)
	case "middle":
		return fmt.Sprintf("%s class 6 7 8 %s explanation tutorial", topic, board)
	case "beginner":
		return fmt.Sprintf("%s easy explanation for kids basics", topic)
	}
	return fmt.Sprintf("%s %s explanation tutorial", topic, board)
}
