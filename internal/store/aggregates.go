package store

import (
	"math"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

const (
	strengthThreshold = 75.0
	weaknessThreshold = 60.0
	recentSessionMax  = 5
)

// ProgressFor summarizes a user's study activity: session and answer
// totals, overall accuracy, speed distribution, and the most recent
// sessions.
func (s *Store) ProgressFor(userID int64) (model.Progress, error) {
	sessions, err := s.ListSessionsByUser(userID)
	if err != nil {
		return model.Progress{}, err
	}

	p := model.Progress{
		TotalSessions:  len(sessions),
		RecentSessions: []model.StudySession{},
	}
	for _, sess := range sessions {
		if sess.Completed {
			p.CompletedSessions++
		}
		for _, r := range sess.Responses {
			p.TotalQuestions++
			if r.IsCorrect {
				p.CorrectAnswers++
			}
			switch r.Speed {
			case model.SpeedFast:
				p.SpeedAnalysis.Fast++
			case model.SpeedOptimal:
				p.SpeedAnalysis.Optimal++
			case model.SpeedSlow:
				p.SpeedAnalysis.Slow++
			}
		}
	}
	if p.TotalQuestions > 0 {
		p.Accuracy = round2(float64(p.CorrectAnswers) / float64(p.TotalQuestions) * 100)
	}

	// ListSessionsByUser already orders newest first.
	if len(sessions) > recentSessionMax {
		sessions = sessions[:recentSessionMax]
	}
	p.RecentSessions = append(p.RecentSessions, sessions...)

	return p, nil
}

// DashboardFor breaks a user's accuracy down by learning technique and
// flags strengths and weaknesses.
func (s *Store) DashboardFor(userID int64) (model.Dashboard, error) {
	sessions, err := s.ListSessionsByUser(userID)
	if err != nil {
		return model.Dashboard{}, err
	}

	d := model.Dashboard{
		TechniquePerformance: make(map[model.Technique]model.TechniqueStats),
		Strengths:            []model.Technique{},
		Weaknesses:           []model.Technique{},
	}

	totalResponses := 0
	for _, sess := range sessions {
		stats := d.TechniquePerformance[sess.Technique]
		for _, r := range sess.Responses {
			stats.Total++
			if r.IsCorrect {
				stats.Correct++
			}
			totalResponses++
			d.TotalLearningTime += r.TimeTaken
		}
		d.TechniquePerformance[sess.Technique] = stats
	}

	for tech, stats := range d.TechniquePerformance {
		if stats.Total > 0 {
			stats.Accuracy = round2(float64(stats.Correct) / float64(stats.Total) * 100)
			d.TechniquePerformance[tech] = stats
		}
		if stats.Accuracy >= strengthThreshold {
			d.Strengths = append(d.Strengths, tech)
		}
		if stats.Accuracy < weaknessThreshold {
			d.Weaknesses = append(d.Weaknesses, tech)
		}
	}

	if totalResponses > 0 {
		d.AvgTimePerQuestion = d.TotalLearningTime / float64(totalResponses)
	}

	return d, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
