package model

import (
	"context"
	"time"
)

// QuestionKind distinguishes multiple-choice from short-answer questions.
type QuestionKind string

const (
	// KindMCQ is a four-option multiple-choice question.
	KindMCQ QuestionKind = "mcq"
	// KindShort is an open-text question expecting a 1-3 word answer.
	KindShort QuestionKind = "short"
)

// Question is a single quiz question parsed from generated text.
type Question struct {
	Sequence int          `json:"sequence"`
	Kind     QuestionKind `json:"kind"`
	Prompt   string       `json:"prompt"`
	Options  []string     `json:"options,omitempty"`
	Answer   string       `json:"answer"`
}

// Quiz is the structured result of parsing a generated quiz block.
// MCQ holds at most four questions and Short at most two, in the order
// they appeared in the source text.
type Quiz struct {
	MCQ   []Question `json:"mcq"`
	Short []Question `json:"short"`
	Raw   string     `json:"raw"`
}

// Len returns the total number of questions in the quiz.
func (q Quiz) Len() int {
	return len(q.MCQ) + len(q.Short)
}

// AnswerSubmission is one learner answer, aligned positionally with the
// quiz's MCQ questions followed by its short questions.
type AnswerSubmission struct {
	Sequence int    `json:"sequence"`
	Text     string `json:"text"`
}

// EvaluationResult is the graded outcome for a single submission.
// Similarity and Overlap are only meaningful for short answers.
type EvaluationResult struct {
	Sequence   int          `json:"sequence"`
	Kind       QuestionKind `json:"kind"`
	Submitted  string       `json:"submitted"`
	Answer     string       `json:"answer"`
	IsCorrect  bool         `json:"is_correct"`
	Confidence float64      `json:"confidence"`
	Similarity float64      `json:"similarity,omitempty"`
	Overlap    float64      `json:"overlap,omitempty"`
}

// QuizEvaluation aggregates per-question results for a whole quiz.
type QuizEvaluation struct {
	Results    []EvaluationResult `json:"results"`
	Correct    int                `json:"correct"`
	Total      int                `json:"total"`
	Percentage int                `json:"percentage"`
}

// VideoCandidate is a scored video search result.
type VideoCandidate struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Channel     string  `json:"channel"`
	Duration    int     `json:"duration"`
	Views       int64   `json:"views"`
	Score       float64 `json:"score"`
}

// URL returns the watch URL for the candidate.
func (v VideoCandidate) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// GradeBandProfile drives keyword and duration policy for video ranking.
// It is selected from the caller's education level and board, not owned
// by the ranker.
type GradeBandProfile struct {
	Keywords        []string
	AvoidKeywords   []string
	TrustedChannels []string
	MinDuration     int
	MaxDuration     int
}

// Technique identifies the learning technique used in a study session.
type Technique string

const (
	TechniquePassage   Technique = "passage"
	TechniqueVideo     Technique = "video"
	TechniqueFlowchart Technique = "flowchart"
)

// ValidTechnique reports whether t names a supported technique.
func ValidTechnique(t Technique) bool {
	switch t {
	case TechniquePassage, TechniqueVideo, TechniqueFlowchart:
		return true
	}
	return false
}

// SpeedScore buckets how quickly a learner answered relative to the
// question's expected time.
type SpeedScore string

const (
	SpeedFast    SpeedScore = "fast"
	SpeedOptimal SpeedScore = "optimal"
	SpeedSlow    SpeedScore = "slow"
)

// User is a registered learner.
type User struct {
	ID             int64
	Email          string
	PasswordHash   string
	EducationLevel string
	SubLevel       string
	Board          string
	Active         bool
	CreatedAt      time.Time
}

// AuthSession is a bearer-token authentication session.
type AuthSession struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// StudySession records one topic studied with one technique, the quiz
// generated for it, and the learner's graded responses.
type StudySession struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"user_id"`
	Topic     string     `json:"topic"`
	Technique Technique  `json:"technique"`
	Content   string     `json:"content"`
	Quiz      Quiz       `json:"quiz"`
	Responses []Response `json:"responses"`
	Score     int        `json:"score"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
}

// Response is one persisted, graded answer within a study session.
type Response struct {
	ID         int64        `json:"id"`
	SessionID  string       `json:"session_id"`
	Sequence   int          `json:"sequence"`
	Kind       QuestionKind `json:"kind"`
	Submitted  string       `json:"submitted"`
	Answer     string       `json:"answer"`
	IsCorrect  bool         `json:"is_correct"`
	Confidence float64      `json:"confidence"`
	Similarity float64      `json:"similarity"`
	Overlap    float64      `json:"overlap"`
	TimeTaken  float64      `json:"time_taken"`
	Speed      SpeedScore   `json:"speed"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Progress summarizes a learner's activity across all sessions.
type Progress struct {
	TotalSessions     int            `json:"total_sessions"`
	CompletedSessions int            `json:"completed_sessions"`
	TotalQuestions    int            `json:"total_questions"`
	CorrectAnswers    int            `json:"correct_answers"`
	Accuracy          float64        `json:"accuracy"`
	SpeedAnalysis     SpeedAnalysis  `json:"speed_analysis"`
	RecentSessions    []StudySession `json:"recent_sessions"`
}

// SpeedAnalysis counts answers per speed bucket.
type SpeedAnalysis struct {
	Fast    int `json:"fast"`
	Optimal int `json:"optimal"`
	Slow    int `json:"slow"`
}

// TechniqueStats holds accuracy figures for a single technique.
type TechniqueStats struct {
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// Dashboard aggregates performance metrics per learning technique.
type Dashboard struct {
	TechniquePerformance map[Technique]TechniqueStats `json:"technique_performance"`
	TotalLearningTime    float64                      `json:"total_learning_time"`
	AvgTimePerQuestion   float64                      `json:"avg_time_per_question"`
	Strengths            []Technique                  `json:"strengths"`
	Weaknesses           []Technique                  `json:"weaknesses"`
}

type userCtxKey struct{}

// ContextWithUser stores a user in the request context.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext retrieves the authenticated user from context, or nil.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}
