// Package quiz turns free-form generated quiz text into structured
// questions and grades learner answers against them.
package quiz

import (
	"strings"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

// Question-count contract asked of the generation service.
const (
	maxMCQQuestions   = 4
	maxShortQuestions = 2
)

// shortAnswerMarker switches the parser into short-answer mode.
const shortAnswerMarker = "SHORT ANSWER"

type parseMode int

const (
	mcqMode parseMode = iota
	shortMode
)

// pending is the question currently being collected.
type pending struct {
	prompt  string
	options []string
	answer  string
	mode    parseMode
}

// Parse converts a generated quiz block into a structured Quiz. It never
// fails: malformed or partial text degrades to a smaller, possibly empty,
// Quiz. The MCQ list is truncated to its first four entries and the short
// list to its first two, preserving the order of appearance.
func Parse(raw string) model.Quiz {
	var (
		mcq   []model.Question
		short []model.Question
		cur   *pending
		mode  = mcqMode
	)

	flush := func() {
		if cur == nil {
			return
		}
		switch cur.mode {
		case mcqMode:
			// An MCQ without options is noise, not a question.
			if cur.prompt != "" && len(cur.options) > 0 {
				mcq = append(mcq, model.Question{
					Kind:    model.KindMCQ,
					Prompt:  cur.prompt,
					Options: cur.options,
					Answer:  cur.answer,
				})
			}
		case shortMode:
			if cur.prompt != "" {
				short = append(short, model.Question{
					Kind:   model.KindShort,
					Prompt: cur.prompt,
					Answer: cur.answer,
				})
			}
		}
		cur = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.Contains(strings.ToUpper(line), shortAnswerMarker) {
			mode = shortMode
			continue
		}

		if rest, ok := questionMarker(line, '1', '4'); ok {
			flush()
			cur = &pending{prompt: rest, mode: mode}
			continue
		}

		// 5/6 markers are authoritative: they force short-answer mode
		// even when the mode-switch line was missing.
		if rest, ok := questionMarker(line, '5', '6'); ok {
			flush()
			mode = shortMode
			cur = &pending{prompt: rest, mode: shortMode}
			continue
		}

		if isOptionLine(line) {
			if cur != nil && cur.mode == mcqMode {
				cur.options = append(cur.options, line)
			}
			continue
		}

		if answer, ok := answerLine(line); ok {
			if cur != nil {
				cur.answer = answer
				// Answers terminate short questions; MCQ questions wait
				// for the next marker or end of input.
				if mode == shortMode {
					cur.mode = shortMode
					flush()
				}
			}
			continue
		}
	}
	flush()

	if len(mcq) > maxMCQQuestions {
		mcq = mcq[:maxMCQQuestions]
	}
	if len(short) > maxShortQuestions {
		short = short[:maxShortQuestions]
	}

	for i := range mcq {
		mcq[i].Sequence = i + 1
	}
	for i := range short {
		short[i].Sequence = maxMCQQuestions + i + 1
	}

	return model.Quiz{MCQ: mcq, Short: short, Raw: raw}
}

// questionMarker reports whether the line starts a question numbered in
// [lo, hi] followed by '.' or ')', returning the prompt text with the
// marker stripped.
func questionMarker(line string, lo, hi byte) (string, bool) {
	if len(line) < 2 || line[0] < lo || line[0] > hi {
		return "", false
	}
	if line[1] != '.' && line[1] != ')' {
		return "", false
	}
	return strings.TrimSpace(line[2:]), true
}

// isOptionLine reports whether the line is an MCQ option: a letter A-D
// followed by ')' or '.'.
func isOptionLine(line string) bool {
	if len(line) < 2 || line[0] < 'A' || line[0] > 'D' {
		return false
	}
	return line[1] == ')' || line[1] == '.'
}

// answerLine extracts the answer text from a case-insensitive
// "Answer:" line.
func answerLine(line string) (string, bool) {
	const prefix = "answer:"
	if len(line) < len(prefix) || !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}
