package video

import (
	"strings"
	"testing"
)

func TestProfileForKnownLevels(t *testing.T) {
	tests := []struct {
		level       string
		minDuration int
		maxDuration int
	}{
		{"competitive", 600, 1200},
		{"advanced", 480, 900},
		{"intermediate", 360, 800},
		{"middle", 300, 720},
		{"beginner", 180, 600},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			p := ProfileFor(tt.level, "")
			if p.MinDuration != tt.minDuration || p.MaxDuration != tt.maxDuration {
				t.Errorf("duration window = [%d, %d], want [%d, %d]",
					p.MinDuration, p.MaxDuration, tt.minDuration, tt.maxDuration)
			}
			if len(p.Keywords) == 0 || len(p.TrustedChannels) == 0 {
				t.Error("profile missing keywords or trusted channels")
			}
		})
	}
}

func TestProfileForCollegeUsesAdvanced(t *testing.T) {
	college := ProfileFor("college", "")
	advanced := ProfileFor("advanced", "")
	if college.MinDuration != advanced.MinDuration || college.MaxDuration != advanced.MaxDuration {
		t.Errorf("college window = [%d, %d], want advanced [%d, %d]",
			college.MinDuration, college.MaxDuration, advanced.MinDuration, advanced.MaxDuration)
	}
}

func TestProfileForUnknownFallsBackToBeginner(t *testing.T) {
	p := ProfileFor("postdoc", "")
	if p.MinDuration != 180 || p.MaxDuration != 600 {
		t.Errorf("fallback window = [%d, %d], want [180, 600]", p.MinDuration, p.MaxDuration)
	}
}

func TestProfileForAppendsBoardKeywords(t *testing.T) {
	p := ProfileFor("intermediate", "cbse")
	found := false
	for _, kw := range p.Keywords {
		if kw == "central board" {
			found = true
		}
	}
	if !found {
		t.Errorf("keywords %v missing board term", p.Keywords)
	}
}

func TestProfileForReturnsCopy(t *testing.T) {
	p := ProfileFor("middle", "")
	p.Keywords[0] = "mutated"
	if fresh := ProfileFor("middle", ""); fresh.Keywords[0] == "mutated" {
		t.Error("mutation of a returned profile leaked into the shared table")
	}
}

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		level string
		board string
		wants []string
	}{
		{"competitive", "cbse", []string{"JEE", "NEET"}},
		{"advanced", "cbse", []string{"class 11 12", "cbse", "NCERT"}},
		{"intermediate", "icse", []string{"class 9 10", "icse", "board exam"}},
		{"middle", "cbse", []string{"class 6 7 8", "tutorial"}},
		{"beginner", "cbse", []string{"easy explanation", "kids"}},
		{"unknown", "state", []string{"state", "explanation tutorial"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			q := SearchQuery("photosynthesis", tt.level, tt.board)
			if !strings.HasPrefix(q, "photosynthesis") {
				t.Errorf("query %q does not start with the topic", q)
			}
			for _, want := range tt.wants {
				if !strings.Contains(q, want) {
					t.Errorf("query %q missing %q", q, want)
				}
			}
		})
	}
}
