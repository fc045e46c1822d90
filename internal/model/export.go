package model

import "time"

// StudyExport is the top-level JSON structure for session result export.
type StudyExport struct {
	ExportedAt time.Time       `json:"exported_at"`
	Sessions   []SessionResult `json:"sessions"`
}

// SessionResult holds one learner's study session data for export.
type SessionResult struct {
	SessionID  string           `json:"session_id"`
	Email      string           `json:"email"`
	Topic      string           `json:"topic"`
	Technique  Technique        `json:"technique"`
	Completed  bool             `json:"completed"`
	CreatedAt  time.Time        `json:"created_at"`
	Questions  []QuestionResult `json:"questions"`
	Correct    int              `json:"correct"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
}

// QuestionResult holds per-question data for export.
type QuestionResult struct {
	Sequence   int          `json:"sequence"`
	Kind       QuestionKind `json:"kind"`
	Prompt     string       `json:"prompt"`
	Submitted  string       `json:"submitted"`
	Answer     string       `json:"answer"`
	IsCorrect  bool         `json:"is_correct"`
	Confidence float64      `json:"confidence"`
	TimeTaken  float64      `json:"time_taken"`
	Speed      SpeedScore   `json:"speed"`
}
