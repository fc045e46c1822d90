package video

import (
	"math"
	"regexp"
	"strings"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

// Scoring policy. Additive signals, floor-clamped at zero; tests pin
// these values, so a change here is a ranking policy change.
const (
	durationFitPoints      = 8.0
	durationNearFitPoints  = 5.0
	durationLooseFitPoints = 3.0
	durationMissPoints     = 1.0
	durationNearFitSlack   = 300

	eduKeywordTitlePoints = 2.5
	eduKeywordDescPoints  = 1.5

	bandKeywordTitlePoints = 4.0
	bandKeywordDescPoints  = 2.5

	topicWordTitlePoints = 5.0
	topicWordDescPoints  = 2.5
	noTopicMatchPenalty  = 10.0

	viewCountCap       = 5.0
	modestViewsPoints  = 2.0
	avoidWordPenalty   = 10.0
	trustedChannelBoost = 6.0
	officialBoost      = 5.0

	// MinSelectionScore separates good candidates from best-effort
	// fallbacks.
	MinSelectionScore = 10.0
)

// officialMarkers indicate verified or curriculum-official content.
var officialMarkers = []string{"official", "verified", "certified", "ncert"}

const maxStoredDescription = 500

// Candidate is raw search-result metadata before duration parsing and
// scoring.
type Candidate struct {
	ID          string
	Title       string
	Description string
	Channel     string
	Duration    string
	Views       int64
}

// Score computes the relevance score of a candidate for the given topic
// and grade-band profile. Higher means a better pedagogical fit. The
// result is clamped to a non-negative floor and rounded to two decimals.
func Score(title, description string, durationSecs int, views int64, topic string, profile model.GradeBandProfile) float64 {
	score := 0.0
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)
	combined := titleLower + " " + descLower

	switch {
	case durationSecs >= profile.MinDuration && durationSecs <= profile.MaxDuration:
		score += durationFitPoints
	case durationSecs >= profile.MinDuration && durationSecs <= profile.MaxDuration+durationNearFitSlack:
		score += durationNearFitPoints
	case durationSecs >= profile.MinDuration:
		score += durationLooseFitPoints
	default:
		score += durationMissPoints
	}

	for _, kw := range EducationalKeywords {
		if strings.Contains(titleLower, kw) {
			score += eduKeywordTitlePoints
		} else if strings.Contains(descLower, kw) {
			score += eduKeywordDescPoints
		}
	}

	for _, kw := range profile.Keywords {
		if strings.Contains(titleLower, kw) {
			score += bandKeywordTitlePoints
		} else if strings.Contains(descLower, kw) {
			score += bandKeywordDescPoints
		}
	}

	matched := 0
	topicWords := eligibleTopicWords(topic)
	for _, word := range topicWords {
		re := wholeWordRe(word)
		switch {
		case re.MatchString(titleLower):
			score += topicWordTitlePoints
			matched++
		case re.MatchString(descLower):
			score += topicWordDescPoints
			matched++
		}
	}
	if matched == 0 && len(topicWords) > 0 {
		score -= noTopicMatchPenalty
	}

	if views > 1000 {
		score += math.Min(viewCountCap, math.Log10(float64(views)))
	} else if views > 100 {
		score += modestViewsPoints
	}

	for _, avoid := range profile.AvoidKeywords {
		if strings.Contains(combined, avoid) {
			score -= avoidWordPenalty
		}
	}

	for _, channel := range profile.TrustedChannels {
		if strings.Contains(combined, channel) {
			score += trustedChannelBoost
		}
	}

	for _, marker := range officialMarkers {
		if strings.Contains(combined, marker) {
			score += officialBoost
			break
		}
	}

	return math.Max(0.0, math.Round(score*100)/100)
}

func eligibleTopicWords(topic string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

func wholeWordRe(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}

// Rank scores every candidate and selects the best one. Candidates whose
// duration cannot be parsed are excluded before scoring. When no
// candidate reaches MinSelectionScore but some exist, the overall
// maximum is returned as a best-effort fallback; nil means no selection.
func Rank(candidates []Candidate, topic string, profile model.GradeBandProfile) *model.VideoCandidate {
	var scored []model.VideoCandidate
	for _, c := range candidates {
		secs, err := ParseDuration(c.Duration)
		if err != nil {
			continue
		}
		scored = append(scored, model.VideoCandidate{
			ID:          c.ID,
			Title:       c.Title,
			Description: truncate(c.Description, maxStoredDescription),
			Channel:     c.Channel,
			Duration:    secs,
			Views:       c.Views,
			Score:       Score(c.Title, c.Description, secs, c.Views, topic, profile),
		})
	}
	if len(scored) == 0 {
		return nil
	}

	best := -1
	bestGood := -1
	for i, c := range scored {
		if best < 0 || c.Score > scored[best].Score {
			best = i
		}
		if c.Score >= MinSelectionScore && (bestGood < 0 || c.Score > scored[bestGood].Score) {
			bestGood = i
		}
	}
	if bestGood >= 0 {
		return &scored[bestGood]
	}
	return &scored[best]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
