package quiz

import (
	"fmt"
	"math"
	"strings"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

// Short-answer acceptance policy. These thresholds are tunable grading
// policy, not incidental detail: tests pin the current values, and any
// change is a behavior-affecting policy change.
const (
	// simWeight and overlapWeight combine the two signals into confidence.
	simWeight     = 0.7
	overlapWeight = 0.3

	// acceptSimilarity accepts near-verbatim answers.
	acceptSimilarity = 0.92
	// acceptOverlap accepts conceptually-overlapping answers phrased
	// differently.
	acceptOverlap = 0.85
	// acceptConfidence accepts answers strong on both signals combined.
	acceptConfidence = 0.86
	// closeConfidence accepts moderate-confidence non-empty answers,
	// trading strictness for learner-friendliness.
	closeConfidence = 0.70
)

// ShortResult holds the tolerant grading outcome for one short answer.
type ShortResult struct {
	IsCorrect  bool
	Confidence float64
	Similarity float64
	Overlap    float64
}

// EvaluateShortAnswer grades a short answer with tolerance for typos and
// conceptual matches. An empty submission is graded against the empty
// string rather than rejected as an error.
func EvaluateShortAnswer(submitted, correct string) ShortResult {
	ua := strings.TrimSpace(submitted)
	ca := strings.TrimSpace(correct)

	sim := Similarity(ua, ca)
	overlap := KeywordOverlap(ua, ca)

	confidence := simWeight*sim + overlapWeight*overlap
	confidence = math.Max(0.0, math.Min(1.0, confidence))

	correct2 := sim >= acceptSimilarity ||
		overlap >= acceptOverlap ||
		confidence >= acceptConfidence ||
		(confidence >= closeConfidence && len(strings.Fields(ua)) >= 1)

	return ShortResult{
		IsCorrect:  correct2,
		Confidence: confidence,
		Similarity: sim,
		Overlap:    overlap,
	}
}

// GradeMCQ grades a multiple-choice submission strictly. Both sides are
// reduced to a single uppercase letter, so a verbose stored answer like
// "B) Chlorophyll" and a submission like "b) something" compare on the
// letter alone. There is no partial credit.
func GradeMCQ(submitted, correct string) bool {
	s := answerLetter(submitted)
	c := answerLetter(correct)
	return s != "" && s == c
}

func answerLetter(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return s[:1]
}

// Evaluate grades the submissions against the quiz. Submissions align
// positionally with the quiz's MCQ questions followed by its short
// questions; a mismatched count is a caller-contract error.
func Evaluate(quiz model.Quiz, submissions []model.AnswerSubmission) (model.QuizEvaluation, error) {
	if len(submissions) != quiz.Len() {
		return model.QuizEvaluation{}, fmt.Errorf("evaluate: %d submissions for %d questions", len(submissions), quiz.Len())
	}

	var eval model.QuizEvaluation
	idx := 0

	for _, q := range quiz.MCQ {
		sub := submissions[idx]
		idx++
		correct := GradeMCQ(sub.Text, q.Answer)
		confidence := 0.0
		if correct {
			confidence = 1.0
		}
		eval.Results = append(eval.Results, model.EvaluationResult{
			Sequence:   q.Sequence,
			Kind:       model.KindMCQ,
			Submitted:  sub.Text,
			Answer:     answerLetter(q.Answer),
			IsCorrect:  correct,
			Confidence: confidence,
		})
	}

	for _, q := range quiz.Short {
		sub := submissions[idx]
		idx++
		res := EvaluateShortAnswer(sub.Text, q.Answer)
		eval.Results = append(eval.Results, model.EvaluationResult{
			Sequence:   q.Sequence,
			Kind:       model.KindShort,
			Submitted:  sub.Text,
			Answer:     q.Answer,
			IsCorrect:  res.IsCorrect,
			Confidence: res.Confidence,
			Similarity: res.Similarity,
			Overlap:    res.Overlap,
		})
	}

	for _, r := range eval.Results {
		if r.IsCorrect {
			eval.Correct++
		}
	}
	eval.Total = len(eval.Results)
	eval.Percentage = Percentage(eval.Correct, eval.Total)
	return eval, nil
}

// Percentage returns round(correct/total*100), or 0 when total is 0.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
