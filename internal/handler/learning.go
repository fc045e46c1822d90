package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appI18n "github.com/chinmaypg001-sys/TechWave/internal/i18n"
	"github.com/chinmaypg001-sys/TechWave/internal/model"
	"github.com/chinmaypg001-sys/TechWave/internal/quiz"
)

// Expected answer time in seconds, used for speed scoring.
const (
	expectedTimeMCQ   = 30.0
	expectedTimeShort = 60.0
)

type contentRequest struct {
	Topic      string          `json:"topic"`
	Technique  model.Technique `json:"technique"`
	Length     string          `json:"length"`
	Complexity string          `json:"complexity"`
}

type contentResponse struct {
	Topic     string                `json:"topic"`
	Technique model.Technique       `json:"technique"`
	Content   string                `json:"content"`
	Video     *model.VideoCandidate `json:"video,omitempty"`
}

func (h *Handler) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic required")
		return
	}
	if !model.ValidTechnique(req.Technique) {
		respondError(w, http.StatusBadRequest, "invalid technique")
		return
	}

	user := model.UserFromContext(r.Context())
	gradeLevel := model.GradeLevels[user.EducationLevel]
	resp := contentResponse{Topic: req.Topic, Technique: req.Technique}

	switch req.Technique {
	case model.TechniquePassage:
		content, err := h.llm.GeneratePassage(r.Context(), req.Topic, user.EducationLevel, gradeLevel, user.Board, req.Length)
		if err != nil {
			slog.Error("passage generation failed", "topic", req.Topic, "error", err)
			respondError(w, http.StatusBadGateway, "content generation failed")
			return
		}
		resp.Content = content

	case model.TechniqueFlowchart:
		content, err := h.llm.GenerateFlowchart(r.Context(), req.Topic, user.EducationLevel, gradeLevel, user.Board, req.Complexity)
		if err != nil {
			slog.Error("flowchart generation failed", "topic", req.Topic, "error", err)
			respondError(w, http.StatusBadGateway, "content generation failed")
			return
		}
		resp.Content = content

	case model.TechniqueVideo:
		if h.search == nil {
			respondError(w, http.StatusServiceUnavailable, "video search not configured")
			return
		}
		video, err := h.search.FindBestVideo(r.Context(), req.Topic, user.EducationLevel, user.Board)
		if err != nil {
			slog.Error("video search failed", "topic", req.Topic, "error", err)
			respondError(w, http.StatusBadGateway, "video search failed")
			return
		}
		if video == nil {
			respondError(w, http.StatusNotFound, "no suitable video found")
			return
		}
		resp.Content = video.URL()
		resp.Video = video
	}

	respondJSON(w, http.StatusOK, resp)
}

type quizRequest struct {
	Topic string                `json:"topic"`
	Video *model.VideoCandidate `json:"video,omitempty"`
}

func (h *Handler) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic required")
		return
	}

	user := model.UserFromContext(r.Context())
	q, err := h.llm.GenerateQuiz(r.Context(), req.Topic, model.GradeLevels[user.EducationLevel], req.Video)
	if err != nil {
		slog.Error("quiz generation failed", "topic", req.Topic, "error", err)
		respondError(w, http.StatusBadGateway, "quiz generation failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"quiz": q})
}

type createSessionRequest struct {
	Topic     string          `json:"topic"`
	Technique model.Technique `json:"technique"`
	Content   string          `json:"content"`
	Quiz      model.Quiz      `json:"quiz"`
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic required")
		return
	}
	if !model.ValidTechnique(req.Technique) {
		respondError(w, http.StatusBadRequest, "invalid technique")
		return
	}

	user := model.UserFromContext(r.Context())
	sess := model.StudySession{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Topic:     req.Topic,
		Technique: req.Technique,
		Content:   req.Content,
		Quiz:      req.Quiz,
	}
	if err := h.store.CreateSession(sess); err != nil {
		slog.Error("create session failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"session_id": sess.ID})
}

// ownedSession loads a session and verifies it belongs to the
// authenticated user. A session owned by someone else reads as missing.
func (h *Handler) ownedSession(w http.ResponseWriter, r *http.Request) *model.StudySession {
	sess, err := h.store.GetSession(chi.URLParam(r, "sessionID"))
	if err != nil {
		slog.Error("get session failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	user := model.UserFromContext(r.Context())
	if sess == nil || sess.UserID != user.ID {
		respondError(w, http.StatusNotFound, appI18n.T(r.Context(), "SessionNotFound"))
		return nil
	}
	return sess
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := h.ownedSession(w, r)
	if sess == nil {
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

type answerRequest struct {
	Sequence  int     `json:"sequence"`
	Answer    string  `json:"answer"`
	TimeTaken float64 `json:"time_taken"`
}

type answerResponse struct {
	Sequence   int                `json:"sequence"`
	Kind       model.QuestionKind `json:"kind"`
	IsCorrect  bool               `json:"is_correct"`
	Confidence float64            `json:"confidence"`
	Speed      model.SpeedScore   `json:"speed"`
	Feedback   string             `json:"feedback"`
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess := h.ownedSession(w, r)
	if sess == nil {
		return
	}
	if sess.Completed {
		respondError(w, http.StatusBadRequest, "session already completed")
		return
	}

	question := findQuestion(sess.Quiz, req.Sequence)
	if question == nil {
		respondError(w, http.StatusNotFound, appI18n.T(r.Context(), "QuestionNotFound"))
		return
	}

	resp := model.Response{
		SessionID: sess.ID,
		Sequence:  question.Sequence,
		Kind:      question.Kind,
		Submitted: req.Answer,
		Answer:    question.Answer,
		TimeTaken: req.TimeTaken,
	}

	var feedback string
	if question.Kind == model.KindMCQ {
		resp.IsCorrect = quiz.GradeMCQ(req.Answer, question.Answer)
		if resp.IsCorrect {
			resp.Confidence = 1.0
			feedback = appI18n.T(r.Context(), "FeedbackCorrect")
		} else {
			feedback = appI18n.Td(r.Context(), "FeedbackIncorrect", map[string]any{"Answer": question.Answer})
		}
		resp.Speed = speedFor(req.TimeTaken, expectedTimeMCQ)
	} else {
		res := quiz.EvaluateShortAnswer(req.Answer, question.Answer)
		resp.IsCorrect = res.IsCorrect
		resp.Confidence = res.Confidence
		resp.Similarity = res.Similarity
		resp.Overlap = res.Overlap
		switch {
		case res.IsCorrect && res.Similarity >= 1.0:
			feedback = appI18n.T(r.Context(), "FeedbackCorrect")
		case res.IsCorrect:
			feedback = appI18n.Td(r.Context(), "FeedbackAccepted", map[string]any{"Answer": question.Answer})
		default:
			feedback = appI18n.Td(r.Context(), "FeedbackIncorrect", map[string]any{"Answer": question.Answer})
		}
		resp.Speed = speedFor(req.TimeTaken, expectedTimeShort)
	}

	if _, err := h.store.AddResponse(resp); err != nil {
		slog.Error("add response failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, answerResponse{
		Sequence:   resp.Sequence,
		Kind:       resp.Kind,
		IsCorrect:  resp.IsCorrect,
		Confidence: resp.Confidence,
		Speed:      resp.Speed,
		Feedback:   feedback,
	})
}

type submitRequest struct {
	Answers []answerRequest `json:"answers"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess := h.ownedSession(w, r)
	if sess == nil {
		return
	}
	if sess.Completed {
		respondError(w, http.StatusBadRequest, "session already completed")
		return
	}

	answers := make(map[int]answerRequest, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.Sequence] = a
	}

	// Evaluation is positional over the full quiz; unanswered questions
	// grade as empty submissions.
	var submissions []model.AnswerSubmission
	for _, q := range append(append([]model.Question{}, sess.Quiz.MCQ...), sess.Quiz.Short...) {
		submissions = append(submissions, model.AnswerSubmission{
			Sequence: q.Sequence,
			Text:     answers[q.Sequence].Answer,
		})
	}

	eval, err := quiz.Evaluate(sess.Quiz, submissions)
	if err != nil {
		slog.Error("evaluate quiz failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	responses := make([]model.Response, 0, len(eval.Results))
	for _, res := range eval.Results {
		expected := expectedTimeMCQ
		if res.Kind == model.KindShort {
			expected = expectedTimeShort
		}
		taken := answers[res.Sequence].TimeTaken
		responses = append(responses, model.Response{
			SessionID:  sess.ID,
			Sequence:   res.Sequence,
			Kind:       res.Kind,
			Submitted:  res.Submitted,
			Answer:     res.Answer,
			IsCorrect:  res.IsCorrect,
			Confidence: res.Confidence,
			Similarity: res.Similarity,
			Overlap:    res.Overlap,
			TimeTaken:  taken,
			Speed:      speedFor(taken, expected),
		})
	}

	if err := h.store.CompleteSession(sess.ID, responses, eval.Correct); err != nil {
		slog.Error("complete session failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var msgID string
	switch {
	case eval.Percentage >= 80:
		msgID = "ScoreExcellent"
	case eval.Percentage >= 60:
		msgID = "ScoreGood"
	default:
		msgID = "ScoreKeepPracticing"
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"evaluation": eval,
		"message":    appI18n.Td(r.Context(), msgID, map[string]any{"Percentage": eval.Percentage}),
	})
}

func findQuestion(q model.Quiz, sequence int) *model.Question {
	for i := range q.MCQ {
		if q.MCQ[i].Sequence == sequence {
			return &q.MCQ[i]
		}
	}
	for i := range q.Short {
		if q.Short[i].Sequence == sequence {
			return &q.Short[i]
		}
	}
	return nil
}

func speedFor(taken, expected float64) model.SpeedScore {
	ratio := taken / expected
	switch {
	case ratio < 0.8:
		return model.SpeedFast
	case ratio < 1.5:
		return model.SpeedOptimal
	default:
		return model.SpeedSlow
	}
}
