package store

import (
	"fmt"
	"time"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
	"github.com/chinmaypg001-sys/TechWave/internal/quiz"
)

// ExportAllSessions builds export-ready results from every study session.
func (s *Store) ExportAllSessions() (model.StudyExport, error) {
	rows, err := s.db.Query(`SELECT id FROM study_sessions ORDER BY created_at, id`)
	if err != nil {
		return model.StudyExport{}, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return model.StudyExport{}, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return model.StudyExport{}, err
	}

	export := model.StudyExport{ExportedAt: time.Now()}
	for _, id := range ids {
		sess, err := s.GetSession(id)
		if err != nil {
			return model.StudyExport{}, fmt.Errorf("get session %s: %w", id, err)
		}
		if sess == nil {
			continue
		}

		user, err := s.GetUserByID(sess.UserID)
		if err != nil {
			return model.StudyExport{}, fmt.Errorf("get user %d: %w", sess.UserID, err)
		}
		var email string
		if user != nil {
			email = user.Email
		}

		prompts := make(map[int]string, sess.Quiz.Len())
		for _, q := range sess.Quiz.MCQ {
			prompts[q.Sequence] = q.Prompt
		}
		for _, q := range sess.Quiz.Short {
			prompts[q.Sequence] = q.Prompt
		}

		var questions []model.QuestionResult
		correct := 0
		for _, r := range sess.Responses {
			if r.IsCorrect {
				correct++
			}
			questions = append(questions, model.QuestionResult{
				Sequence:   r.Sequence,
				Kind:       r.Kind,
				Prompt:     prompts[r.Sequence],
				Submitted:  r.Submitted,
				Answer:     r.Answer,
				IsCorrect:  r.IsCorrect,
				Confidence: r.Confidence,
				TimeTaken:  r.TimeTaken,
				Speed:      r.Speed,
			})
		}

		export.Sessions = append(export.Sessions, model.SessionResult{
			SessionID:  sess.ID,
			Email:      email,
			Topic:      sess.Topic,
			Technique:  sess.Technique,
			Completed:  sess.Completed,
			CreatedAt:  sess.CreatedAt,
			Questions:  questions,
			Correct:    correct,
			Total:      len(sess.Responses),
			Percentage: quiz.Percentage(correct, len(sess.Responses)),
		})
	}

	return export, nil
}
